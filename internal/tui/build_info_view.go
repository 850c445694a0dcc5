// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/agent-chat/models"
)

const appName = "agent-chat"

func renderBuildInfoWindow(info models.AppBuildInfo, agentAddress string, width int) string {
	fields := []pageField{
		{label: "Application", value: appName},
		{label: "Version", value: info.BuildVersion()},
		{label: "Date", value: info.BuildDate()},
		{label: "Commit", value: info.BuildCommit()},
	}
	if agentAddress != "" {
		fields = append(fields, pageField{label: "Agent", value: agentAddress})
	}

	return renderPage("ABOUT", fields, keys.esc.Help().Key+": back", width)
}
