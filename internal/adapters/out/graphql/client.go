// Package graphql talks to the remote GraphQL API. Every call is a single
// multipart POST to {base}/root carrying the document in a "graphql" field
// and uploads as extra parts.
package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/ports"
	"dashboard/internal/pkg/errs"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	documentField   = "graphql"
	requestIDHeader = "X-Request-ID"
)

// Uploads maps a $variable name to the files sent under it.
type Uploads map[string][]ports.File

// Client posts GraphQL documents. It never retries.
type Client struct {
	endpoint string
	http     *http.Client
	session  ports.SessionProvider
	tracer   trace.Tracer
}

func NewClient(baseURL string, httpClient *http.Client, session ports.SessionProvider) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if httpClient == nil {
		return nil, errs.NewValueIsRequiredError("httpClient")
	}
	if session == nil {
		return nil, errs.NewValueIsRequiredError("session")
	}
	return &Client{
		endpoint: strings.TrimRight(baseURL, "/") + "/root",
		http:     httpClient,
		session:  session,
		tracer:   otel.Tracer("graphql"),
	}, nil
}

type response struct {
	Data   json.RawMessage   `json:"data"`
	Errors []json.RawMessage `json:"errors"`
}

// Do sends document and decodes the data object into out (skipped when out is
// nil). The first reported error becomes an errs.RemoteError; anything that
// prevents reading a response becomes an errs.TransportError.
func (c *Client) Do(ctx context.Context, operation, document string, uploads Uploads, out any) error {
	token, err := c.session.Token(ctx)
	if err != nil {
		return err
	}

	ctx, span := c.tracer.Start(ctx, operation, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	correlationID := kernel.NewUUID().String()
	span.SetAttributes(
		attribute.String("graphql.operation", operation),
		attribute.String("request.id", correlationID),
	)

	err = c.do(ctx, operation, document, uploads, token, correlationID, out)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (c *Client) do(
	ctx context.Context, operation, document string, uploads Uploads, token, correlationID string, out any,
) error {
	body, contentType, err := encodeForm(document, uploads)
	if err != nil {
		return errs.NewTransportError(operation, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return errs.NewTransportError(operation, err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", token)
	req.Header.Set(requestIDHeader, correlationID)

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.NewTransportError(operation, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errs.NewTransportError(operation, err)
	}

	var decoded response
	if err = json.Unmarshal(raw, &decoded); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return errs.NewTransportError(operation, fmt.Errorf("unexpected status %d", resp.StatusCode))
		}
		return errs.NewTransportError(operation, fmt.Errorf("decode response: %w", err))
	}

	if len(decoded.Errors) > 0 {
		return errs.NewRemoteError(operation, errorMessage(decoded.Errors[0]))
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return errs.NewTransportError(operation, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	if out == nil {
		return nil
	}
	if len(decoded.Data) == 0 || string(decoded.Data) == "null" {
		return errs.NewTransportError(operation, errors.New("response has no data"))
	}
	if err = json.Unmarshal(decoded.Data, out); err != nil {
		return errs.NewTransportError(operation, fmt.Errorf("decode data: %w", err))
	}
	return nil
}

// errorMessage accepts both plain string errors and {"message": ...} objects.
func errorMessage(raw json.RawMessage) string {
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text
	}
	var object struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &object); err == nil && object.Message != "" {
		return object.Message
	}
	return string(raw)
}

func encodeForm(document string, uploads Uploads) (io.Reader, string, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	for name, files := range uploads {
		for _, file := range files {
			header := make(textproto.MIMEHeader)
			header.Set("Content-Disposition",
				fmt.Sprintf(`form-data; name=%q; filename=%q`, name, file.Name))
			contentType := file.ContentType
			if contentType == "" {
				contentType = "application/octet-stream"
			}
			header.Set("Content-Type", contentType)

			part, err := form.CreatePart(header)
			if err != nil {
				return nil, "", err
			}
			if _, err = part.Write(file.Data); err != nil {
				return nil, "", err
			}
		}
	}

	if err := form.WriteField(documentField, document); err != nil {
		return nil, "", err
	}
	if err := form.Close(); err != nil {
		return nil, "", err
	}
	return &buf, form.FormDataContentType(), nil
}
