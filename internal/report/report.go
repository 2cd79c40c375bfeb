// Package report renders operation results for the terminal.
//
// Tables go to stdout so they can be piped; logs stay on stderr. Secrets
// appear in exactly one place: the creation output.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/koustreak/miniokit/internal/adminstore"
	"github.com/koustreak/miniokit/internal/bucket"
	"github.com/koustreak/miniokit/internal/objstore"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
)

// AccessKeyTable writes a table of access keys. Secrets are never shown.
func AccessKeyTable(w io.Writer, keys []adminstore.AccessKey) {
	if len(keys) == 0 {
		fmt.Fprintln(w, "no access keys")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ACCESS KEY\tNAME\tSTATUS\tEXPIRATION")
	for _, k := range keys {
		exp := "never"
		if k.Expiration != nil && !k.Expiration.IsZero() {
			exp = k.Expiration.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", k.ID, k.Name, k.Status, exp)
	}
	tw.Flush()
	fmt.Fprintf(w, "%d access key(s)\n", len(keys))
}

// CredentialsCreated writes the full key material of a freshly created key.
// This is the only place the secret is ever printed.
func CredentialsCreated(w io.Writer, creds *adminstore.Credentials, name string) {
	fmt.Fprintln(w, green("access key created"))
	fmt.Fprintf(w, "  Access Key: %s\n", creds.AccessKey)
	fmt.Fprintf(w, "  Secret Key: %s\n", creds.SecretKey)
	if name != "" {
		fmt.Fprintf(w, "  Name:       %s\n", name)
	}
	fmt.Fprintln(w, yellow("store the secret key now; it cannot be retrieved later"))
}

// AccessKeyDetail writes the metadata of one access key.
func AccessKeyDetail(w io.Writer, key *adminstore.AccessKey) {
	fmt.Fprintf(w, "Access Key:  %s\n", key.ID)
	fmt.Fprintf(w, "Name:        %s\n", key.Name)
	fmt.Fprintf(w, "Status:      %s\n", key.Status)
	if key.ParentUser != "" {
		fmt.Fprintf(w, "Parent User: %s\n", key.ParentUser)
	}
	if key.Description != "" {
		fmt.Fprintf(w, "Description: %s\n", key.Description)
	}
	if key.Expiration != nil && !key.Expiration.IsZero() {
		fmt.Fprintf(w, "Expiration:  %s\n", key.Expiration.Format("2006-01-02 15:04"))
	}
}

// BucketTable writes a table of all visible buckets.
func BucketTable(w io.Writer, buckets []objstore.BucketInfo) {
	if len(buckets) == 0 {
		fmt.Fprintln(w, "no buckets")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tCREATED")
	for _, b := range buckets {
		created := "-"
		if !b.CreatedAt.IsZero() {
			created = b.CreatedAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(tw, "%s\t%s\n", b.Name, created)
	}
	tw.Flush()
	fmt.Fprintf(w, "%d bucket(s)\n", len(buckets))
}

// BucketResults writes one line per declared bucket plus an n/m summary.
// Used by both the status and reconcile-create operations.
func BucketResults(w io.Writer, results []bucket.Result) {
	ok := 0
	for _, r := range results {
		fmt.Fprintf(w, "%-40s %s\n", r.Name, outcomeLabel(r))
		if r.Ok() {
			ok++
		}
	}
	line := fmt.Sprintf("%d/%d succeeded", ok, len(results))
	if ok == len(results) {
		fmt.Fprintln(w, green(line))
	} else {
		fmt.Fprintln(w, red(line))
	}
}

func outcomeLabel(r bucket.Result) string {
	switch r.Outcome {
	case bucket.OutcomePresent:
		return green("present")
	case bucket.OutcomeCreated:
		return green("created")
	case bucket.OutcomeAlreadyExisted:
		return green("already exists")
	case bucket.OutcomeAbsent:
		return yellow("absent")
	case bucket.OutcomeInvalid:
		return red("invalid: " + errMessage(r.Err))
	case bucket.OutcomeFailed:
		return red("failed: " + errMessage(r.Err))
	default:
		return string(r.Outcome)
	}
}

func errMessage(err error) string {
	if err == nil {
		return "unknown"
	}
	return err.Error()
}
