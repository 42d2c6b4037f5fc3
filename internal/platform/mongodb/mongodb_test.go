package mongodb

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"hrms-backend/internal/platform/storeerr"
)

func dupErr(index string) error {
	return mongo.WriteException{WriteErrors: mongo.WriteErrors{{
		Code:    11000,
		Message: "E11000 duplicate key error collection: hrms.employees index: " + index + " dup key: { email: \"a@x.com\" }",
	}}}
}

func TestTranslate(t *testing.T) {
	keys := map[string]string{IndexEmployeeID: "employee_id", IndexEmployeeEmail: "email"}

	assert.NoError(t, Translate(nil, keys))
	assert.ErrorIs(t, Translate(mongo.ErrNoDocuments, nil), storeerr.ErrNotFound)

	var dup *storeerr.DuplicateKeyError
	require.ErrorAs(t, Translate(dupErr(IndexEmployeeEmail), keys), &dup)
	assert.Equal(t, "email", dup.Key)

	assert.ErrorIs(t, Translate(dupErr("_id_"), keys), storeerr.ErrDuplicate)

	timeout := Translate(context.DeadlineExceeded, nil)
	assert.ErrorIs(t, timeout, storeerr.ErrUnavailable)

	raw := errors.New("boom")
	assert.Equal(t, raw, Translate(raw, nil))
}
