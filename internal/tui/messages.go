package tui

import "github.com/MKhiriev/go-job-tracker/models"

type authDoneMsg struct {
	session models.Session
	err     error
}

type listLoadedMsg struct {
	items []models.Application
	err   error
}

type statsLoadedMsg struct {
	stats models.ApplicationStats
	err   error
}

type detailLoadedMsg struct {
	app models.Application
	err error
}

// savedMsg reports a create or update. stats is valid unless err wraps
// service.ErrStatsRefresh only.
type savedMsg struct {
	app     models.Application
	stats   models.ApplicationStats
	created bool
	err     error
}

type deletedMsg struct {
	id    string
	stats models.ApplicationStats
	err   error
}

// loggedOutMsg ends the session. forced is set when the server rejected the
// token.
type loggedOutMsg struct {
	forced bool
	err    error
}

type copiedMsg struct {
	err error
}

type clearToastMsg struct {
	id int
}
