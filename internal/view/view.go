// Package view builds presentation models for the activities UI.
// It is pure: no I/O, no services, just domain types in and render-ready
// structs out. Templates consume these models verbatim.
package view

import (
	"github.com/mergington/activities-ui/internal/domain/model"
	domainsession "github.com/mergington/activities-ui/internal/domain/session"
)

const notLoggedInLabel = "Not logged in - View only mode"

// ParticipantRow is one registered student inside an activity card.
type ParticipantRow struct {
	Email string
	// CanRemove controls whether the unregister affordance is rendered.
	// It is true only when the viewer is an authenticated teacher.
	CanRemove bool
	Activity  string
}

// ActivityCard is the render model for a single activity.
type ActivityCard struct {
	Name            string
	Description     string
	Schedule        string
	SpotsLeft       int
	MaxParticipants int
	Participants    []ParticipantRow
	HasParticipants bool
	// CanSignup mirrors the viewer's auth state; unauthenticated
	// viewers see the card read-only.
	CanSignup bool
}

// AuthState is the header auth widget model.
type AuthState struct {
	LoggedIn bool
	Label    string
}

// ActivitiesPage is the full page model for the activities view.
// Cards keep the order the backend returned the activities in.
type ActivitiesPage struct {
	Auth       AuthState
	Activities []ActivityCard
}

// BuildAuthState derives the header widget from the session.
func BuildAuthState(sess domainsession.Session) AuthState {
	if sess.IsLoggedIn() {
		return AuthState{LoggedIn: true, Label: "Logged in as: " + sess.TeacherName}
	}
	return AuthState{Label: notLoggedInLabel}
}

// BuildActivitiesPage maps backend activities onto the page model,
// preserving the order the backend returned them in.
func BuildActivitiesPage(activities model.ActivityList, sess domainsession.Session) ActivitiesPage {
	loggedIn := sess.IsLoggedIn()

	cards := make([]ActivityCard, 0, len(activities))
	for _, a := range activities {
		cards = append(cards, buildCard(a, loggedIn))
	}

	return ActivitiesPage{
		Auth:       BuildAuthState(sess),
		Activities: cards,
	}
}

func buildCard(a model.Activity, loggedIn bool) ActivityCard {
	rows := make([]ParticipantRow, 0, len(a.Participants))
	for _, email := range a.Participants {
		rows = append(rows, ParticipantRow{
			Email:     email,
			CanRemove: loggedIn,
			Activity:  a.Name,
		})
	}

	return ActivityCard{
		Name:            a.Name,
		Description:     a.Description,
		Schedule:        a.Schedule,
		SpotsLeft:       a.SpotsLeft(),
		MaxParticipants: a.MaxParticipants,
		Participants:    rows,
		HasParticipants: len(rows) > 0,
		CanSignup:       loggedIn,
	}
}
