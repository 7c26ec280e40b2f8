//go:build http_enabled

package main

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/google/uuid"
)

const uploadUrl = "https://playful-patterns.com/submit-playthrough-cratepush.php"

// makeHttpRequest makes a POST HTTP request to an endpoint and returns the
// body of the response as a string.
func makeHttpRequest(url string, fields map[string]string, files map[string][]byte) (string, error) {
	// Create a buffer to write our multipart form data.
	var requestBody bytes.Buffer
	writer := multipart.NewWriter(&requestBody)
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			return "", err
		}
	}
	for k, v := range files {
		part, err := writer.CreateFormFile(k, k)
		if err != nil {
			return "", err
		}
		if _, err = part.Write(v); err != nil {
			return "", err
		}
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	request, err := http.NewRequest("POST", url, &requestBody)
	if err != nil {
		return "", err
	}
	request.Header.Set("content-type", writer.FormDataContentType())

	client := &http.Client{}
	response, err := client.Do(request)
	if err != nil {
		return "", err
	}
	defer func() { _ = response.Body.Close() }()
	if response.StatusCode != 200 {
		return "", fmt.Errorf("http request failed: %d", response.StatusCode)
	}
	data, err := io.ReadAll(response.Body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func UploadPlaythroughHttp(user string,
	releaseVersion int64,
	simulationVersion int64,
	inputVersion int64,
	id uuid.UUID, data []byte) error {
	_, err := makeHttpRequest(uploadUrl,
		map[string]string{
			"user":               user,
			"release_version":    strconv.FormatInt(releaseVersion, 10),
			"simulation_version": strconv.FormatInt(simulationVersion, 10),
			"input_version":      strconv.FormatInt(inputVersion, 10),
			"id":                 id.String()},
		map[string][]byte{"playthrough": data})
	return err
}
