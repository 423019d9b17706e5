package handler

import (
	"fmt"
	"net/http"
	"partyinbangalore-backend/response"
	"partyinbangalore-backend/upload"
)

const maxUploadBytes = 32 << 20

// UploadImages pushes the submitted files to the image host and returns
// the hosted URLs for the form to fold into its payload.
func UploadImages(uploader upload.Uploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			response.BadRequest("invalid upload", fmt.Sprintf("uploadImages: error parsing multipart form: %+v", err)).Send(ctx, w)
			return
		}

		files := r.MultipartForm.File["images"]
		if len(files) == 0 {
			response.InvalidData("uploadImages: no images in request").Send(ctx, w)
			return
		}

		var urls []string
		for _, header := range files {
			file, err := header.Open()
			if err != nil {
				response.BadRequest("invalid upload", fmt.Sprintf("uploadImages: error opening %s: %+v", header.Filename, err)).Send(ctx, w)
				return
			}

			hostedURL, err := uploader.Upload(header.Filename, file)
			file.Close()
			if err != nil {
				sendError(ctx, w, err)
				return
			}
			urls = append(urls, hostedURL)
		}

		response.OK(map[string][]string{"urls": urls}).Send(w)
	}
}
