package sheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"

	"slp-server/config"
	"slp-server/models"
)

// NewAuthorizedHTTPClient builds an OAuth2-backed http.Client for the sheets
// API from service-account credentials. A credentials file takes precedence;
// discrete client-email/private-key values are the fallback. The private key
// may arrive with literal "\n" sequences (common when pasted into an env
// var), so those are unescaped.
func NewAuthorizedHTTPClient(ctx context.Context, credentialsPath, clientEmail, privateKey string) (*http.Client, error) {
	if credentialsPath != "" {
		data, err := os.ReadFile(credentialsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read credentials file %q: %w", credentialsPath, err)
		}
		conf, err := google.JWTConfigFromJSON(data, config.SHEETS_READONLY_SCOPE)
		if err != nil {
			return nil, fmt.Errorf("failed to parse credentials file %q: %w", credentialsPath, err)
		}
		return conf.Client(ctx), nil
	}

	if clientEmail == "" || privateKey == "" {
		return nil, errors.New("missing spreadsheet credentials")
	}

	conf := &jwt.Config{
		Email:      clientEmail,
		PrivateKey: []byte(strings.ReplaceAll(privateKey, `\n`, "\n")),
		Scopes:     []string{config.SHEETS_READONLY_SCOPE},
		TokenURL:   google.JWTTokenURL,
	}
	return conf.Client(ctx), nil
}

// SheetsApiUnavailable reports a construction-time credential problem on
// every call, which lets the importer degrade to its fallback data instead
// of the process refusing to start.
type SheetsApiUnavailable struct {
	err error
}

func NewSheetsApiUnavailable(err error) *SheetsApiUnavailable {
	return &SheetsApiUnavailable{err: err}
}

func (c *SheetsApiUnavailable) GetSpreadsheet(spreadsheetID string) (*models.Spreadsheet, error) {
	return nil, c.err
}

func (c *SheetsApiUnavailable) GetValues(spreadsheetID string, rangeA1 string) (*models.ValueRange, error) {
	return nil, c.err
}
