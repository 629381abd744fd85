// Package validate checks write payloads before they reach the store. Rules
// run in a fixed order and the first failure wins: required fields, then enum
// membership, then date format. Every write re-validates from its payload,
// nothing is cached between requests.
package validate

import (
	"regexp"

	"github.com/mmfl-dev/admin-api/src/apperr"
	"github.com/mmfl-dev/admin-api/src/models"
)

// Match dates are stored as literal DD-MM-YYYY strings.
var dateRe = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)

func ValidDate(s string) bool {
	return dateRe.MatchString(s)
}

func TeamCreate(p *models.TeamCreate) error {
	if p.Name == "" {
		return apperr.Validation("name is required")
	}
	return nil
}

func PlayerCreate(p *models.PlayerCreate) error {
	if p.Name == "" {
		return apperr.Validation("name is required")
	}
	if p.Team == "" {
		return apperr.Validation("team is required")
	}
	if p.Position == "" {
		return apperr.Validation("position is required")
	}
	if !models.Position(p.Position).Valid() {
		return apperr.Validation("position must be one of GK, DF, MF, FW")
	}
	return nil
}

func PlayerUpdate(p *models.PlayerUpdate) error {
	if p.Position != nil && !models.Position(*p.Position).Valid() {
		return apperr.Validation("position must be one of GK, DF, MF, FW")
	}
	return nil
}

func NewsCreate(p *models.NewsCreate) error {
	if p.Title == "" {
		return apperr.Validation("title is required")
	}
	if p.Body == "" {
		return apperr.Validation("body is required")
	}
	return nil
}

func MatchCreate(p *models.MatchCreate) error {
	if p.HomeTeam == "" {
		return apperr.Validation("homeTeam is required")
	}
	if p.AwayTeam == "" {
		return apperr.Validation("awayTeam is required")
	}
	if p.Date == "" {
		return apperr.Validation("date is required")
	}
	if p.Time == "" {
		return apperr.Validation("time is required")
	}
	if p.Status == "" {
		return apperr.Validation("status is required")
	}
	if !models.MatchStatus(p.Status).Valid() {
		return apperr.Validation("status must be one of upcoming, ongoing, finished")
	}
	if !ValidDate(p.Date) {
		return apperr.Validation("date must match DD-MM-YYYY")
	}
	return nil
}

func MatchUpdate(p *models.MatchUpdate) error {
	if p.Status != nil && !models.MatchStatus(*p.Status).Valid() {
		return apperr.Validation("status must be one of upcoming, ongoing, finished")
	}
	if p.Date != nil && !ValidDate(*p.Date) {
		return apperr.Validation("date must match DD-MM-YYYY")
	}
	return nil
}
