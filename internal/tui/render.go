// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
)

// RenderCredential formats one credential, password included.
func RenderCredential(c models.Credential) string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("Service: "))
	b.WriteString(c.Service)
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Username:"))
	b.WriteString(" ")
	b.WriteString(c.Username)
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Password:"))
	b.WriteString(" ")
	b.WriteString(secretStyle.Render(c.Password))
	return boxStyle.Render(b.String())
}

// RenderList formats every credential in order.
func RenderList(entries []models.Credential) string {
	if len(entries) == 0 {
		return "You have 0 services"
	}

	blocks := make([]string, 0, len(entries)+1)
	blocks = append(blocks, titleStyle.Render(fmt.Sprintf("%d service(s)", len(entries))))
	for _, c := range entries {
		blocks = append(blocks, RenderCredential(c))
	}
	return strings.Join(blocks, "\n")
}

// RenderNotFound reports a missing service.
func RenderNotFound(service string) string {
	return errorStyle.Render(fmt.Sprintf("Service %q is not registered", service))
}

// RenderSuccess formats a confirmation line.
func RenderSuccess(msg string) string {
	return successStyle.Render(msg)
}

// RenderError formats an error line for the user.
func RenderError(err error) string {
	return errorStyle.Render("Error: " + Humanize(err))
}

// RenderSecret formats a generated password.
func RenderSecret(secret string) string {
	return labelStyle.Render("Your generated password:") + " " + secretStyle.Render(secret)
}

// RenderBuildInfo formats version information.
func RenderBuildInfo(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("pwdvault\n")
	b.WriteString("Build version: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("Build date: ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString("Build commit: ")
	b.WriteString(valueOrNA(info.BuildCommit()))

	return b.String()
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
