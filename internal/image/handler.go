package image

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/menuorder/backend/internal/response"
	"github.com/menuorder/backend/internal/storage"
)

// Handler holds HTTP handlers for image endpoints.
type Handler struct {
	svc      *Service
	maxBytes int64
}

// NewHandler creates a new image Handler. Request bodies above maxBytes are rejected.
func NewHandler(svc *Service, maxBytes int64) *Handler {
	return &Handler{svc: svc, maxBytes: maxBytes}
}

type uploadRequest struct {
	// Image is decoded as any so a non-string value reaches the service as invalid input.
	Image any `json:"image" swaggertype:"string" example:"data:image/png;base64,iVBORw0KGgo="`
}

type uploadData struct {
	Key string `json:"key" example:"images/1746776743000-a1b2c3d4.png"`
}

type downloadURLData struct {
	URL string `json:"url" example:"https://menus.tos-s3-cn-beijing.volces.com/images/1746776743000-a1b2c3d4.png?X-Amz-Signature=..."`
}

// Upload godoc
//
//	@Summary		Upload image
//	@Description	Decode a base64 image (optionally a data:image/{png,jpeg,jpg,gif};base64, URL) and store it. Returns the generated object key.
//	@Tags			images
//	@Accept			json
//	@Produce		json
//	@Param			request	body		uploadRequest	true	"Base64 image"
//	@Success		201		{object}	response.Envelope{data=uploadData}
//	@Failure		400		{object}	response.Envelope
//	@Failure		413		{object}	response.Envelope
//	@Failure		500		{object}	response.Envelope
//	@Failure		502		{object}	response.Envelope
//	@Router			/images [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	var req uploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		response.BadRequest(w, "invalid request body")
		return
	}
	imageData, _ := req.Image.(string)

	key, err := h.svc.Upload(r.Context(), imageData)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Created(w, uploadData{Key: key})
}

// DownloadURL godoc
//
//	@Summary		Get download URL
//	@Description	Return a time-limited pre-signed GET URL for an uploaded image.
//	@Tags			images
//	@Produce		json
//	@Param			key	query		string	true	"Object key"	example(images/1746776743000-a1b2c3d4.png)
//	@Success		200	{object}	response.Envelope{data=downloadURLData}
//	@Failure		400	{object}	response.Envelope
//	@Failure		500	{object}	response.Envelope
//	@Failure		502	{object}	response.Envelope
//	@Router			/images/url [get]
func (h *Handler) DownloadURL(w http.ResponseWriter, r *http.Request) {
	url, err := h.svc.DownloadURL(r.Context(), r.URL.Query().Get("key"))
	if err != nil {
		writeError(w, err)
		return
	}

	response.OK(w, downloadURLData{URL: url})
}

// writeError maps the error kinds of the image and storage packages to HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrDecode), errors.Is(err, storage.ErrInvalidKey):
		response.BadRequest(w, err.Error())
	case errors.Is(err, storage.ErrStorageClient), errors.Is(err, storage.ErrStorageServer):
		log.Printf("image: %v", err)
		response.Error(w, http.StatusBadGateway, "object storage request failed")
	default:
		log.Printf("image: %v", err)
		response.InternalError(w)
	}
}
