package azure

import (
	"fmt"
	"net/http"

	"github.com/joomcode/errorx"
)

// ApiError carries the structured error the Graph API returns on a rejected
// request. Code and Message come from the OData error envelope when the
// response body contains one.
type ApiError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e ApiError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("graph api error: %s (status code: %d)", http.StatusText(e.StatusCode), e.StatusCode)
	}

	return fmt.Sprintf("graph api error: %s - %s (status code: %d)", e.Code, e.Message, e.StatusCode)
}

var (
	Errors                   = errorx.NewNamespace("azure")
	ServicePrincipalNotFound = Errors.NewType("servicePrincipalNotFound")
	SyncJobNotFound          = Errors.NewType("syncJobNotFound")
)
