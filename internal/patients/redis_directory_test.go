package patients

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisDirectory(t *testing.T) *RedisDirectory {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisDirectory(client, nil)
}

func TestRedisDirectory_RegisterAndValidate(t *testing.T) {
	dir := newRedisDirectory(t)
	ctx := context.Background()

	record, err := dir.Register(ctx, &RegisterRequest{Name: "Ann", Age: 30, Email: "ann@x.com"})
	require.NoError(t, err)
	assert.True(t, record.IsRegistered)

	found, err := dir.Validate(ctx, &ValidateRequest{Name: "ANN", Age: 30, Email: "Ann@X.com"})
	require.NoError(t, err)
	assert.Equal(t, "Ann", found.Name)
}

func TestRedisDirectory_DuplicateIdentity(t *testing.T) {
	dir := newRedisDirectory(t)
	ctx := context.Background()

	_, err := dir.Register(ctx, &RegisterRequest{Name: "Ann", Age: 30, Email: "ann@x.com"})
	require.NoError(t, err)

	_, err = dir.Register(ctx, &RegisterRequest{Name: "ann", Age: 31, Email: "ANN@X.com"})
	assert.ErrorIs(t, err, ErrAlreadyRegistered)

	records, err := dir.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestRedisDirectory_ValidateAgeMismatch(t *testing.T) {
	dir := newRedisDirectory(t)
	ctx := context.Background()

	_, err := dir.Register(ctx, &RegisterRequest{Name: "Ann", Age: 30, Email: "ann@x.com"})
	require.NoError(t, err)

	_, err = dir.Validate(ctx, &ValidateRequest{Name: "Ann", Age: 31, Email: "ann@x.com"})
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestRedisDirectory_ValidateUnknown(t *testing.T) {
	dir := newRedisDirectory(t)

	_, err := dir.Validate(context.Background(), &ValidateRequest{Name: "Ghost", Age: 20, Email: "g@x.com"})
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestRedisDirectory_List(t *testing.T) {
	dir := newRedisDirectory(t)
	ctx := context.Background()

	for _, req := range []RegisterRequest{
		{Name: "Ann", Age: 30, Email: "ann@x.com"},
		{Name: "Bob", Age: 44, Email: "bob@x.com"},
	} {
		_, err := dir.Register(ctx, &req)
		require.NoError(t, err)
	}

	records, err := dir.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
