//go:build integration

package postgres_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	pgrepo "github.com/Gunvolt24/moa_wifi/internal/repo/postgres"
	"github.com/Gunvolt24/moa_wifi/internal/testutil"
)

// 1) Регистрация и поиск по MAC.
func TestDeviceRepo_RegisterAndFind_TC(t *testing.T) {
	t.Parallel()

	pool, ctx := startDB(t)
	repo := pgrepo.NewDeviceRepository(pool)

	d := testutil.MakeDevice()
	require.NoError(t, repo.Register(ctx, &d))

	got, err := repo.ByMAC(ctx, d.MAC)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, d.RoomNumber, got.RoomNumber)

	missing, err := repo.ByMAC(ctx, "00:00:00:00:00:00")
	require.NoError(t, err)
	require.Nil(t, missing)
}

// 2) Повторная регистрация того же MAC — обновление, created_at не меняется.
func TestDeviceRepo_RegisterUpsert_TC(t *testing.T) {
	t.Parallel()

	pool, ctx := startDB(t)
	repo := pgrepo.NewDeviceRepository(pool)

	d := testutil.MakeDevice()
	require.NoError(t, repo.Register(ctx, &d))

	first, err := repo.ByMAC(ctx, d.MAC)
	require.NoError(t, err)

	d.FastMode = true
	d.LastUpdate = d.LastUpdate.Add(time.Minute)
	d.CreatedAt = d.CreatedAt.Add(time.Hour) // не должно примениться
	require.NoError(t, repo.Register(ctx, &d))

	got, err := repo.ByMAC(ctx, d.MAC)
	require.NoError(t, err)
	require.True(t, got.FastMode)
	require.True(t, got.CreatedAt.Equal(first.CreatedAt), "created_at must survive upsert")
}

// 3) CountFast считает только быстрые устройства нужной комнаты.
func TestDeviceRepo_CountFast_TC(t *testing.T) {
	t.Parallel()

	pool, ctx := startDB(t)
	repo := pgrepo.NewDeviceRepository(pool)

	room := "7" + testutil.UniqSuffix()[:2]

	for i := 0; i < 2; i++ {
		d := testutil.MakeDevice(testutil.WithDeviceRoom(room), testutil.WithFastMode())
		require.NoError(t, repo.Register(ctx, &d))
	}
	slow := testutil.MakeDevice(testutil.WithDeviceRoom(room))
	require.NoError(t, repo.Register(ctx, &slow))
	otherRoom := testutil.MakeDevice(testutil.WithFastMode())
	require.NoError(t, repo.Register(ctx, &otherRoom))

	count, err := repo.CountFast(ctx, room)
	require.NoError(t, err)
	require.Equal(t, 2, count)
}

// 4) List — постраничный, свежие сверху.
func TestDeviceRepo_List_TC(t *testing.T) {
	t.Parallel()

	pool, ctx := startDB(t)
	repo := pgrepo.NewDeviceRepository(pool)

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		d := testutil.MakeDevice()
		d.LastUpdate = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.Register(ctx, &d))
	}

	got, err := repo.List(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.True(t, !got[0].LastUpdate.Before(got[1].LastUpdate), "newest first")

	rest, err := repo.List(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, rest, 1)
}
