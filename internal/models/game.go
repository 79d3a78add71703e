package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Genre is the gameplay genre of a generated concept.
type Genre string

const (
	GenreRPG          Genre = "rpg"
	GenreFPS          Genre = "fps"
	GenreAdventure    Genre = "adventure"
	GenreStrategy     Genre = "strategy"
	GenrePuzzle       Genre = "puzzle"
	GenrePlatformer   Genre = "platformer"
	GenreMetroidvania Genre = "metroidvania"
	GenreVisualNovel  Genre = "visual_novel"
	GenreOther        Genre = "other"
)

// Genres lists the accepted genres in display order.
var Genres = []Genre{
	GenreRPG, GenreFPS, GenreAdventure, GenreStrategy, GenrePuzzle,
	GenrePlatformer, GenreMetroidvania, GenreVisualNovel, GenreOther,
}

var genreNames = map[Genre]string{
	GenreRPG:          "RPG",
	GenreFPS:          "FPS",
	GenreAdventure:    "Adventure",
	GenreStrategy:     "Strategy",
	GenrePuzzle:       "Puzzle",
	GenrePlatformer:   "Platformer",
	GenreMetroidvania: "Metroidvania",
	GenreVisualNovel:  "Visual Novel",
	GenreOther:        "Other",
}

// Valid reports whether g is one of Genres.
func (g Genre) Valid() bool {
	_, ok := genreNames[g]
	return ok
}

// DisplayName returns the human label, or the raw value for unknown genres.
func (g Genre) DisplayName() string {
	if name, ok := genreNames[g]; ok {
		return name
	}
	return string(g)
}

// Ambiance is the mood/setting of a generated concept.
type Ambiance string

const (
	AmbiancePostApocalyptic Ambiance = "post_apocalyptic"
	AmbianceFantasy         Ambiance = "fantasy"
	AmbianceCyberpunk       Ambiance = "cyberpunk"
	AmbianceSciFi           Ambiance = "scifi"
	AmbianceHorror          Ambiance = "horror"
	AmbianceMystery         Ambiance = "mystery"
	AmbianceHistorical      Ambiance = "historical"
	AmbianceDreamlike       Ambiance = "dreamlike"
	AmbianceDarkFantasy     Ambiance = "dark_fantasy"
	AmbianceOther           Ambiance = "other"
)

// Ambiances lists the accepted ambiances in display order.
var Ambiances = []Ambiance{
	AmbiancePostApocalyptic, AmbianceFantasy, AmbianceCyberpunk, AmbianceSciFi, AmbianceHorror,
	AmbianceMystery, AmbianceHistorical, AmbianceDreamlike, AmbianceDarkFantasy, AmbianceOther,
}

var ambianceNames = map[Ambiance]string{
	AmbiancePostApocalyptic: "Post-Apocalyptic",
	AmbianceFantasy:         "Fantasy",
	AmbianceCyberpunk:       "Cyberpunk",
	AmbianceSciFi:           "Sci-Fi",
	AmbianceHorror:          "Horror",
	AmbianceMystery:         "Mystery",
	AmbianceHistorical:      "Historical",
	AmbianceDreamlike:       "Dreamlike",
	AmbianceDarkFantasy:     "Dark Fantasy",
	AmbianceOther:           "Other",
}

// Valid reports whether a is one of Ambiances.
func (a Ambiance) Valid() bool {
	_, ok := ambianceNames[a]
	return ok
}

// DisplayName returns the human label, or the raw value for unknown ambiances.
func (a Ambiance) DisplayName() string {
	if name, ok := ambianceNames[a]; ok {
		return name
	}
	return string(a)
}

// Field limits of the game record.
const (
	MaxTitleLength      = 100
	MaxKeywordsLength   = 200
	MaxReferencesLength = 200
)

// Game is a generated video game concept owned by a user.
type Game struct {
	ID                  uuid.UUID `json:"id" db:"id"`
	OwnerID             uuid.UUID `json:"owner_id" db:"owner_id"`
	Title               string    `json:"title" db:"title"`
	Genre               Genre     `json:"genre" db:"genre"`
	Ambiance            Ambiance  `json:"ambiance" db:"ambiance"`
	Keywords            string    `json:"keywords" db:"keywords"`
	References          string    `json:"references" db:"references_text"`
	UniverseDescription string    `json:"universe_description" db:"universe_description"`
	StoryAct1           string    `json:"story_act1" db:"story_act1"`
	StoryAct2           string    `json:"story_act2" db:"story_act2"`
	StoryAct3           string    `json:"story_act3" db:"story_act3"`
	HasDynamicNarrative bool      `json:"has_dynamic_narrative" db:"has_dynamic_narrative"`
	CreatedAt           time.Time `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time `json:"updated_at" db:"updated_at"`
}

// KeywordList splits the comma separated keywords and trims each entry.
func (g *Game) KeywordList() []string {
	if g.Keywords == "" {
		return []string{}
	}
	parts := strings.Split(g.Keywords, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		list = append(list, strings.TrimSpace(p))
	}
	return list
}

// GenreName is the display label of the game's genre.
func (g *Game) GenreName() string { return g.Genre.DisplayName() }

// AmbianceName is the display label of the game's ambiance.
func (g *Game) AmbianceName() string { return g.Ambiance.DisplayName() }

// ActText returns the story text of act 1..3, or "" for any other act.
func (g *Game) ActText(act int) string {
	switch act {
	case 1:
		return g.StoryAct1
	case 2:
		return g.StoryAct2
	case 3:
		return g.StoryAct3
	default:
		return ""
	}
}

// SetActText overwrites the story text of act 1..3. It reports false for any
// other act and leaves the game unchanged.
func (g *Game) SetActText(act int, text string) bool {
	switch act {
	case 1:
		g.StoryAct1 = text
	case 2:
		g.StoryAct2 = text
	case 3:
		g.StoryAct3 = text
	default:
		return false
	}
	return true
}

// Character is a member of a game's cast.
type Character struct {
	ID         uuid.UUID `json:"id" db:"id"`
	GameID     uuid.UUID `json:"game_id" db:"game_id"`
	Name       string    `json:"name" db:"name"`
	Role       string    `json:"role" db:"role"`
	Background string    `json:"background" db:"background"`
	Abilities  string    `json:"abilities" db:"abilities"`
	ImagePath  *string   `json:"image_path,omitempty" db:"image_path"`
}

// Location is a place of a game's world.
type Location struct {
	ID          uuid.UUID `json:"id" db:"id"`
	GameID      uuid.UUID `json:"game_id" db:"game_id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	ImagePath   *string   `json:"image_path,omitempty" db:"image_path"`
}

// GameDetails is a game with its cast and locations.
type GameDetails struct {
	Game       *Game        `json:"game"`
	Characters []*Character `json:"characters"`
	Locations  []*Location  `json:"locations"`
}

// Favorite marks a game as a favorite of a user.
type Favorite struct {
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	GameID    uuid.UUID `json:"game_id" db:"game_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// GameConcept is what the concept generator produces for a new game.
type GameConcept struct {
	Title               string             `json:"title"`
	UniverseDescription string             `json:"universe_description"`
	StoryAct1           string             `json:"story_act1"`
	StoryAct2           string             `json:"story_act2"`
	StoryAct3           string             `json:"story_act3"`
	Characters          []ConceptCharacter `json:"characters"`
	Locations           []ConceptLocation  `json:"locations"`
}

// ConceptCharacter is a generated character before persistence.
type ConceptCharacter struct {
	Name       string `json:"name"`
	Role       string `json:"role"`
	Background string `json:"background"`
	Abilities  string `json:"abilities"`
}

// ConceptLocation is a generated location before persistence.
type ConceptLocation struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ConceptRequest carries the user's wishes for a new concept.
type ConceptRequest struct {
	Genre      Genre
	Ambiance   Ambiance
	Keywords   string
	References string
}

// CreateGameRequest is the user input for a new game.
type CreateGameRequest struct {
	Genre               Genre    `json:"genre"`
	Ambiance            Ambiance `json:"ambiance"`
	Keywords            string   `json:"keywords"`
	References          string   `json:"references"`
	HasDynamicNarrative bool     `json:"has_dynamic_narrative"`
}

// GameSummary is a dashboard row.
type GameSummary struct {
	*Game
	IsFavorite bool `json:"is_favorite"`
}
