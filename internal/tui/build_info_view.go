// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-job-tracker/models"
)

func renderFooter(info models.BuildInfo, email string) string {
	footer := "job-tracker " + info.Version
	if email != "" {
		footer = email + " · " + footer
	}
	return helpStyle.Render(footer)
}
