package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/koustreak/miniokit/internal/adminstore"
	"github.com/koustreak/miniokit/internal/bucket"
	"github.com/koustreak/miniokit/internal/errs"
	"github.com/koustreak/miniokit/internal/objstore"
)

func init() {
	// Deterministic output regardless of the test terminal.
	color.NoColor = true
}

func TestAccessKeyTable(t *testing.T) {
	exp := time.Date(2027, 1, 2, 15, 4, 0, 0, time.UTC)
	keys := []adminstore.AccessKey{
		{ID: "AKIAEXAMPLE000000001", Name: "ci", Status: "on"},
		{ID: "AKIAEXAMPLE000000002", Name: "backup", Status: "off", Expiration: &exp},
	}

	buf := &bytes.Buffer{}
	AccessKeyTable(buf, keys)
	out := buf.String()

	assert.Contains(t, out, "ACCESS KEY")
	assert.Contains(t, out, "AKIAEXAMPLE000000001")
	assert.Contains(t, out, "never")
	assert.Contains(t, out, "2027-01-02 15:04")
	assert.Contains(t, out, "2 access key(s)")
}

func TestAccessKeyTable_Empty(t *testing.T) {
	buf := &bytes.Buffer{}
	AccessKeyTable(buf, nil)
	assert.Contains(t, buf.String(), "no access keys")
}

func TestCredentialsCreated_ShowsSecretOnce(t *testing.T) {
	buf := &bytes.Buffer{}
	CredentialsCreated(buf, &adminstore.Credentials{
		AccessKey: "generated-id",
		SecretKey: "generated-secret",
	}, "deploy")

	out := buf.String()
	assert.Contains(t, out, "generated-id")
	assert.Contains(t, out, "generated-secret")
	assert.Contains(t, out, "deploy")
	assert.Contains(t, out, "cannot be retrieved later")
}

func TestAccessKeyDetail_OmitsEmptyFields(t *testing.T) {
	buf := &bytes.Buffer{}
	AccessKeyDetail(buf, &adminstore.AccessKey{
		ID: "AKIAEXAMPLE000000001", Name: "ci", Status: "on",
	})

	out := buf.String()
	assert.Contains(t, out, "Access Key:  AKIAEXAMPLE000000001")
	assert.NotContains(t, out, "Description")
	assert.NotContains(t, out, "Expiration")
}

func TestBucketTable(t *testing.T) {
	buf := &bytes.Buffer{}
	BucketTable(buf, []objstore.BucketInfo{
		{Name: "bucket-data", CreatedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)},
		{Name: "bucket-logs"},
	})

	out := buf.String()
	assert.Contains(t, out, "bucket-data")
	assert.Contains(t, out, "2026-08-01")
	assert.Contains(t, out, "2 bucket(s)")
}

func TestBucketResults_Summary(t *testing.T) {
	results := []bucket.Result{
		{Name: "bucket-data", Outcome: bucket.OutcomeCreated},
		{Name: "bucket-logs", Outcome: bucket.OutcomeAlreadyExisted},
		{Name: "Bad-Name", Outcome: bucket.OutcomeInvalid,
			Err: errs.New(errs.ErrKindInvalidInput, "bad characters")},
	}

	buf := &bytes.Buffer{}
	BucketResults(buf, results)
	out := buf.String()

	assert.Contains(t, out, "created")
	assert.Contains(t, out, "already exists")
	assert.Contains(t, out, "invalid: [invalid_input] bad characters")
	assert.Contains(t, out, "2/3 succeeded")
}

func TestBucketResults_AllOk(t *testing.T) {
	results := []bucket.Result{
		{Name: "bucket-data", Outcome: bucket.OutcomePresent},
		{Name: "bucket-logs", Outcome: bucket.OutcomeAbsent},
	}

	buf := &bytes.Buffer{}
	BucketResults(buf, results)
	assert.Contains(t, buf.String(), "2/2 succeeded")
}
