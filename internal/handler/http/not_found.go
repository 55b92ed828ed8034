// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-job-tracker/internal/app"
	"github.com/MKhiriev/go-job-tracker/internal/utils"
)

// notFound is registered as both the NotFound and the MethodNotAllowed
// handler of the router.
//
// Chi answers a known path requested with an unregistered method with
// 405 Method Not Allowed. Here that case is reported as 404 like any other
// unknown route, so callers cannot probe which methods a path supports.
// Paths under /api get the API flavoured message.
func notFound(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/api" || strings.HasPrefix(r.URL.Path, "/api/") {
		utils.WriteError(w, app.MsgAPIEndpointNotFound, http.StatusNotFound)
		return
	}
	utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
}
