package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"gameforge/internal/interfaces"
	"gameforge/internal/models"
	"gameforge/pkg/utils"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type exportServiceImpl struct {
	db         interfaces.DBTX
	games      interfaces.GameRepository
	characters interfaces.CharacterRepository
	locations  interfaces.LocationRepository
	logger     *zap.Logger
}

var _ interfaces.ExportService = (*exportServiceImpl)(nil)

func NewExportService(
	db interfaces.DBTX,
	games interfaces.GameRepository,
	characters interfaces.CharacterRepository,
	locations interfaces.LocationRepository,
	logger *zap.Logger,
) interfaces.ExportService {
	return &exportServiceImpl{
		db:         db,
		games:      games,
		characters: characters,
		locations:  locations,
		logger:     logger.Named("ExportService"),
	}
}

func (s *exportServiceImpl) ExportGamePDF(ctx context.Context, ownerID, gameID uuid.UUID, w io.Writer) (string, error) {
	game, err := s.games.GetByID(ctx, s.db, gameID)
	if err != nil {
		return "", err
	}
	if game.OwnerID != ownerID {
		return "", models.ErrNotFound
	}
	characters, err := s.characters.ListByGame(ctx, s.db, gameID)
	if err != nil {
		return "", err
	}
	locations, err := s.locations.ListByGame(ctx, s.db, gameID)
	if err != nil {
		return "", err
	}

	pdf := renderGamePDF(&models.GameDetails{Game: game, Characters: characters, Locations: locations})
	if err := pdf.Error(); err != nil {
		s.logger.Error("Failed to render PDF", zap.Stringer("gameID", gameID), zap.Error(err))
		return "", fmt.Errorf("failed to render pdf: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return "", fmt.Errorf("failed to write pdf: %w", err)
	}

	s.logger.Info("Game exported", zap.Stringer("gameID", gameID))
	return PDFFilename(game.Title), nil
}

// PDFFilename is the download name for a game's export.
func PDFFilename(title string) string {
	name := strings.Trim(utils.SanitizeFilename(title), "._-")
	if name == "" {
		name = "game"
	}
	return name + ".pdf"
}

// renderGamePDF lays the game out on A4 pages in a single column.
func renderGamePDF(d *models.GameDetails) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.SetTitle(d.Game.Title, true)
	pdf.AddPage()
	// Core fonts are cp1252; accents survive, other scripts do not.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	heading := func(text string) {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 14)
		pdf.MultiCell(0, 8, tr(text), "", "L", false)
	}
	body := func(text string) {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, tr(text), "", "L", false)
	}

	pdf.SetFont("Helvetica", "B", 20)
	pdf.MultiCell(0, 10, tr(d.Game.Title), "", "C", false)
	pdf.SetFont("Helvetica", "I", 11)
	pdf.MultiCell(0, 6, tr(fmt.Sprintf("%s / %s", d.Game.GenreName(), d.Game.AmbianceName())), "", "C", false)
	if kw := d.Game.KeywordList(); len(kw) > 0 {
		pdf.MultiCell(0, 6, tr("Mots-clés: "+strings.Join(kw, ", ")), "", "C", false)
	}
	if d.Game.References != "" {
		pdf.MultiCell(0, 6, tr("Références: "+d.Game.References), "", "C", false)
	}

	heading("Univers")
	body(d.Game.UniverseDescription)

	heading("Scénario")
	actNames := []string{models.ActNameIntroduction, models.ActNameDevelopment, models.ActNameConclusion}
	for i, name := range actNames {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.MultiCell(0, 7, tr(fmt.Sprintf("Acte %d - %s", i+1, name)), "", "L", false)
		body(d.Game.ActText(i + 1))
		pdf.Ln(2)
	}

	if len(d.Characters) > 0 {
		heading("Personnages")
		for _, c := range d.Characters {
			pdf.SetFont("Helvetica", "B", 12)
			pdf.MultiCell(0, 7, tr(fmt.Sprintf("%s (%s)", c.Name, c.Role)), "", "L", false)
			body(c.Background)
			if c.Abilities != "" {
				body("Capacités: " + c.Abilities)
			}
			pdf.Ln(2)
		}
	}

	if len(d.Locations) > 0 {
		heading("Lieux")
		for _, l := range d.Locations {
			pdf.SetFont("Helvetica", "B", 12)
			pdf.MultiCell(0, 7, tr(l.Name), "", "L", false)
			body(l.Description)
			pdf.Ln(2)
		}
	}
	return pdf
}
