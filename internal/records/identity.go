package records

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rbillups/scoreboardbot/internal/models"
)

// NormCode normalizes a game name to its lookup code: lowercase with all
// whitespace removed (e.g. "M a d d e n" -> "madden").
func NormCode(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, s)
}

// TitleName formats a raw game input into its stored display name.
// Casers are stateful, so one is built per call rather than shared.
func TitleName(s string) string {
	return cases.Title(language.English).String(strings.TrimSpace(s))
}

// ResolvePlayer returns the Player for an external id, creating it with the
// observed display name if absent, or updating the stored name if it changed.
// The unit-of-work cache covers rows inserted earlier in this transaction.
func (u *UnitOfWork) ResolvePlayer(externalID int64, displayName string) (*models.Player, error) {
	if p, ok := u.players[externalID]; ok {
		if displayName != "" && p.DisplayName != displayName {
			if _, err := u.tx.Exec(`UPDATE players SET display_name=$1 WHERE id=$2`, displayName, externalID); err != nil {
				return nil, fmt.Errorf("update player name: %w", err)
			}
			p.DisplayName = displayName
		}
		return p, nil
	}

	var p models.Player
	err := u.tx.Get(&p, `SELECT id, display_name, created_at FROM players WHERE id=$1`, externalID)
	if errors.Is(err, sql.ErrNoRows) {
		err = u.tx.Get(&p, `
			INSERT INTO players (id, display_name, created_at) VALUES ($1, $2, NOW())
			RETURNING id, display_name, created_at
		`, externalID, displayName)
		if err != nil {
			return nil, fmt.Errorf("create player %d: %w", externalID, err)
		}
		u.players[externalID] = &p
		return &p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup player %d: %w", externalID, err)
	}

	if displayName != "" && p.DisplayName != displayName {
		if _, err := u.tx.Exec(`UPDATE players SET display_name=$1 WHERE id=$2`, displayName, externalID); err != nil {
			return nil, fmt.Errorf("update player name: %w", err)
		}
		p.DisplayName = displayName
	}

	u.players[externalID] = &p
	return &p, nil
}

// ResolveGame returns the Game for a name or code, creating it if neither an
// exact code match nor a case-insensitive name match exists. Empty input
// resolves to nil. Distinct spellings that normalize to the same code
// collapse to one Game.
func (u *UnitOfWork) ResolveGame(nameOrCode string) (*models.Game, error) {
	raw := strings.TrimSpace(nameOrCode)
	if raw == "" {
		return nil, nil
	}
	code := NormCode(raw)

	var g models.Game
	err := u.tx.Get(&g, `SELECT id, name, short_code FROM games WHERE short_code=$1`, code)
	if err == nil {
		return &g, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("lookup game by code: %w", err)
	}

	err = u.tx.Get(&g, `SELECT id, name, short_code FROM games WHERE lower(name)=lower($1)`, raw)
	if err == nil {
		return &g, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("lookup game by name: %w", err)
	}

	err = u.tx.Get(&g, `
		INSERT INTO games (name, short_code) VALUES ($1, $2)
		RETURNING id, name, short_code
	`, TitleName(raw), code)
	if err != nil {
		return nil, fmt.Errorf("create game %q: %w", code, err)
	}
	return &g, nil
}
