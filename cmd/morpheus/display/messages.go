package display

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"sort"
	"strings"

	"github.com/concave-dev/morpheus-cli/cmd/morpheus/client"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/config"
)

// PrintDryRun prints the request that would be sent in place of sending it.
func PrintDryRun(w io.Writer, c *client.Client, req client.Request) {
	fmt.Fprintln(w, dryRunStyle.Render("DRY RUN"))
	fmt.Fprintf(w, "%s %s\n", req.Method, c.URL(req))

	if len(req.Query) > 0 {
		fmt.Fprintln(w, "Query:")
		for _, line := range queryLines(req.Query) {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}

	if req.Body != nil {
		body, err := json.MarshalIndent(req.Body, "", "  ")
		if err != nil {
			fmt.Fprintf(w, "Body: %v\n", req.Body)
			return
		}
		fmt.Fprintln(w, "JSON:")
		fmt.Fprintln(w, string(body))
	}
}

func queryLines(q url.Values) []string {
	keys := make([]string, 0, len(q))
	for k := range q {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s=%s", k, strings.Join(q[k], ",")))
	}
	return lines
}

// PrintAPIError prints the appliance error message and per-field errors.
// With --verbose the raw response body follows.
func PrintAPIError(w io.Writer, apiErr *client.APIError) {
	msg := apiErr.Message
	if msg == "" {
		msg = fmt.Sprintf("Request failed with status %d", apiErr.StatusCode)
	}
	Alert(w, "%s", msg)
	for _, fe := range apiErr.FieldErrors() {
		fmt.Fprintf(w, "  * %s\n", fe)
	}
	if config.Global.Verbose && apiErr.Body != "" {
		fmt.Fprintln(w, apiErr.Body)
	}
}

// PrintError prints a command error once, using PrintAPIError for
// appliance errors.
func PrintError(w io.Writer, err error) {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		PrintAPIError(w, apiErr)
		return
	}
	Alert(w, "%s", err.Error())
}
