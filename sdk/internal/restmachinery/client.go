package restmachinery

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"

	"github.com/innoverse/admin/sdk/meta"
	"github.com/pkg/errors"
)

// OutboundRequest represents an outbound API request.
type OutboundRequest struct {
	Method      string
	Path        string
	QueryParams map[string]string
	AuthHeaders map[string]string
	Headers     map[string]string
	ReqBodyObj  interface{}
	SuccessCode int
	RespObj     interface{}
}

// BaseClient provides request-issuing machinery shared by all specialized API
// clients.
type BaseClient struct {
	APIAddress string
	APIToken   string
	HTTPClient *http.Client
}

// BasicAuthHeaders returns a map with a basic auth Authorization header.
func (b *BaseClient) BasicAuthHeaders(
	username string,
	password string,
) map[string]string {
	return map[string]string{
		"Authorization": fmt.Sprintf(
			"Basic %s",
			base64.StdEncoding.EncodeToString(
				[]byte(fmt.Sprintf("%s:%s", username, password)),
			),
		),
	}
}

// BearerTokenAuthHeaders returns a map with a bearer token Authorization
// header.
func (b *BaseClient) BearerTokenAuthHeaders() map[string]string {
	return map[string]string{
		"Authorization": fmt.Sprintf("Bearer %s", b.APIToken),
	}
}

// ExecuteRequest issues the request and, if applicable, unmarshals the
// response body into apiReq.RespObj.
func (b *BaseClient) ExecuteRequest(
	ctx context.Context,
	apiReq OutboundRequest,
) error {
	resp, err := b.SubmitRequest(ctx, apiReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close() // nolint: errcheck
	if apiReq.RespObj != nil {
		respBodyBytes, err := ioutil.ReadAll(resp.Body)
		if err != nil {
			return errors.Wrap(err, "error reading response body")
		}
		if err := json.Unmarshal(respBodyBytes, apiReq.RespObj); err != nil {
			return errors.Wrap(err, "error unmarshaling response body")
		}
	}
	return nil
}

// SubmitRequest issues the request and returns the raw response, translating
// non-success status codes into the typed error taxonomy.
func (b *BaseClient) SubmitRequest(
	ctx context.Context,
	apiReq OutboundRequest,
) (*http.Response, error) {
	var reqBodyReader io.Reader
	if apiReq.ReqBodyObj != nil {
		switch rb := apiReq.ReqBodyObj.(type) {
		case []byte:
			reqBodyReader = bytes.NewBuffer(rb)
		default:
			reqBodyBytes, err := json.Marshal(apiReq.ReqBodyObj)
			if err != nil {
				return nil, errors.Wrap(err, "error marshaling request body")
			}
			reqBodyReader = bytes.NewBuffer(reqBodyBytes)
		}
	}

	req, err := http.NewRequestWithContext(
		ctx,
		apiReq.Method,
		fmt.Sprintf("%s/%s", b.APIAddress, apiReq.Path),
		reqBodyReader,
	)
	if err != nil {
		return nil, errors.Wrapf(
			err,
			"error creating request %s %s",
			apiReq.Method,
			apiReq.Path,
		)
	}
	if len(apiReq.QueryParams) > 0 {
		q := req.URL.Query()
		for k, v := range apiReq.QueryParams {
			q.Set(k, v)
		}
		req.URL.RawQuery = q.Encode()
	}
	for k, v := range apiReq.AuthHeaders {
		req.Header.Add(k, v)
	}
	for k, v := range apiReq.Headers {
		req.Header.Add(k, v)
	}

	resp, err := b.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "error invoking API")
	}

	if (apiReq.SuccessCode == 0 && resp.StatusCode != http.StatusOK) ||
		(apiReq.SuccessCode != 0 && resp.StatusCode != apiReq.SuccessCode) {
		// HTTP response code hints at what sort of error might be in the body of
		// the response
		var apiErr error
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			apiErr = &meta.ErrAuthentication{}
		case http.StatusForbidden:
			apiErr = &meta.ErrAuthorization{}
		case http.StatusBadRequest:
			apiErr = &meta.ErrBadRequest{}
		case http.StatusNotFound:
			apiErr = &meta.ErrNotFound{}
		case http.StatusConflict:
			apiErr = &meta.ErrConflict{}
		case http.StatusNotImplemented:
			apiErr = &meta.ErrNotSupported{}
		case http.StatusInternalServerError:
			apiErr = &meta.ErrInternalServer{}
		default:
			return nil, errors.Errorf(
				"received %d from API server",
				resp.StatusCode,
			)
		}
		bodyBytes, err := ioutil.ReadAll(resp.Body)
		if err != nil {
			return nil, errors.Wrap(err, "error reading error response body")
		}
		if err = json.Unmarshal(bodyBytes, apiErr); err != nil {
			return nil, errors.Wrap(err, "error unmarshaling error response body")
		}
		return nil, apiErr
	}

	return resp, nil
}
