// routes_resize.go - HTTP-Handler fuer das bikubische Resampling
// Nimmt ein Bild (base64 im JSON-Body) und eine Ziel-Groesse entgegen,
// resampelt ueber den ResizeBicubic-Operator und liefert PNG zurueck
package server

import (
	"bytes"
	"errors"
	"image/png"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/7blacky7/mobinfer/api"
	"github.com/7blacky7/mobinfer/logutil"
	"github.com/7blacky7/mobinfer/ops"
	"github.com/7blacky7/mobinfer/vision"
)

// abortWithStatusError bricht den Request mit einem api.StatusError ab
func abortWithStatusError(c *gin.Context, code int, err error) {
	c.AbortWithStatusJSON(code, api.StatusError{
		StatusCode:   code,
		Status:       http.StatusText(code),
		ErrorMessage: err.Error(),
	})
}

// ResizeHandler bedient POST /api/resize
func (s *Server) ResizeHandler(c *gin.Context) {
	var req api.ResizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithStatusError(c, http.StatusBadRequest, err)
		return
	}

	if len(req.Image) == 0 {
		abortWithStatusError(c, http.StatusBadRequest, errors.New("image fehlt"))
		return
	}
	if req.Height <= 0 || req.Width <= 0 {
		abortWithStatusError(c, http.StatusBadRequest, errors.New("height und width muessen positiv sein"))
		return
	}

	mode, err := ops.ParseCoordinateTransformationMode(req.Mode)
	if err != nil {
		abortWithStatusError(c, http.StatusBadRequest, err)
		return
	}

	img, err := vision.LoadImageFromBytes(req.Image)
	if err != nil {
		abortWithStatusError(c, http.StatusBadRequest, err)
		return
	}

	start := time.Now()

	t, err := vision.ImageToTensor(img)
	if err != nil {
		abortWithStatusError(c, http.StatusInternalServerError, err)
		return
	}

	resized, err := vision.Resize(t, req.Height, req.Width, mode, req.AlignCorners)
	if err != nil {
		abortWithStatusError(c, http.StatusInternalServerError, err)
		return
	}

	out, err := vision.TensorToImage(resized)
	if err != nil {
		abortWithStatusError(c, http.StatusInternalServerError, err)
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		abortWithStatusError(c, http.StatusInternalServerError, err)
		return
	}

	logutil.Trace("resize", "mode", mode, "shape", resized.Shape,
		"millis", time.Since(start).Milliseconds())

	c.JSON(http.StatusOK, api.ResizeResponse{
		Image:       buf.Bytes(),
		Shape:       resized.Shape,
		TotalMillis: time.Since(start).Milliseconds(),
	})
}
