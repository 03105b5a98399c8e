// types.go - API Types fuer den Resize-Server
// Enthaelt: StatusError, ImageData, ResizeRequest, ResizeResponse, VersionResponse
package api

import (
	"fmt"
)

// StatusError is an error with an HTTP status code and message.
// Nur ErrorMessage geht ueber den Draht; Code und Status-Text bleiben
// serverseitig.
type StatusError struct {
	StatusCode   int    `json:"-"`
	Status       string `json:"-"`
	ErrorMessage string `json:"error"`
}

func (e StatusError) Error() string {
	switch {
	case e.Status != "" && e.ErrorMessage != "":
		return fmt.Sprintf("%s: %s", e.Status, e.ErrorMessage)
	case e.Status != "":
		return e.Status
	case e.ErrorMessage != "":
		return e.ErrorMessage
	default:
		// this should not happen
		return "something went wrong, please see the mobinfer server logs for details"
	}
}

// ImageData represents the raw binary data of an image file.
type ImageData []byte

// ResizeRequest ist der Request-Body fuer POST /api/resize.
type ResizeRequest struct {
	// Image ist das Eingabe-Bild (base64-kodiert im JSON-Body)
	Image ImageData `json:"image"`

	// Height und Width sind die Ziel-Groesse in Pixeln
	Height int `json:"height"`
	Width  int `json:"width"`

	// Mode waehlt die Koordinaten-Transformation:
	// 0 = asymmetric (Default), 1 = half_pixel, 2 = pytorch_half_pixel
	Mode int `json:"mode,omitempty"`

	// AlignCorners bildet Eck-Pixel exakt aufeinander ab
	AlignCorners bool `json:"align_corners,omitempty"`
}

// ResizeResponse ist die Antwort von POST /api/resize.
type ResizeResponse struct {
	// Image ist das resampelte Bild als PNG (base64-kodiert im JSON-Body)
	Image ImageData `json:"image"`

	// Shape ist die Output-Tensor-Shape [N, C, H, W]
	Shape [4]int `json:"shape"`

	// TotalMillis ist die Gesamtdauer des Resamplings
	TotalMillis int64 `json:"total_millis"`
}

// VersionResponse ist die Antwort von GET /api/version.
type VersionResponse struct {
	Version string `json:"version"`
}
