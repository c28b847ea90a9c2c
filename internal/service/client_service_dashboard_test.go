package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/intern-match/internal/clock"
	"github.com/MKhiriev/intern-match/internal/mock"
	"github.com/MKhiriev/intern-match/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestDashboard(t *testing.T) (*Dashboard, *mock.MockDashboardSource, *clock.Fake) {
	t.Helper()
	ctrl := gomock.NewController(t)
	src := mock.NewMockDashboardSource(ctrl)
	fake := clock.NewFake(testStart)

	d := NewDashboard(src, nil, WithClock(fake), WithInterval(0))
	t.Cleanup(d.Close)
	return d, src, fake
}

func TestDashboard_SetActiveSyncsBoth(t *testing.T) {
	d, src, _ := newTestDashboard(t)

	src.EXPECT().FetchApplications(gomock.Any()).Return([]models.Application{
		{ID: "a1", InternshipID: "i1", Status: models.ApplicationReviewing},
	}, nil)
	src.EXPECT().FetchInternships(gomock.Any()).Return([]models.Internship{
		{ID: "i1", Title: "Backend intern"},
	}, nil)

	d.SetActive(true)

	assert.Len(t, d.Applications.Snapshot().Data, 1)
	assert.Len(t, d.Internships.Snapshot().Data, 1)

	app, ok := d.ApplicationFor("i1")
	require.True(t, ok)
	assert.Equal(t, models.ApplicationReviewing, app.Status)

	_, ok = d.ApplicationFor("i2")
	assert.False(t, ok)
}

func TestDashboard_InternshipPrefersCache(t *testing.T) {
	d, src, _ := newTestDashboard(t)
	ctx := context.Background()

	src.EXPECT().FetchApplications(gomock.Any()).Return(nil, nil)
	src.EXPECT().FetchInternships(gomock.Any()).Return([]models.Internship{{ID: "i1", Title: "cached"}}, nil)
	src.EXPECT().FetchInternship(gomock.Any(), "i2").Return(models.Internship{ID: "i2", Title: "remote"}, nil)

	d.SetActive(true)

	got, err := d.Internship(ctx, "i1")
	require.NoError(t, err)
	assert.Equal(t, "cached", got.Title)

	got, err = d.Internship(ctx, "i2")
	require.NoError(t, err)
	assert.Equal(t, "remote", got.Title)
}

func TestDashboard_InternshipError(t *testing.T) {
	d, src, _ := newTestDashboard(t)
	notFound := errors.New("not found")

	src.EXPECT().FetchInternship(gomock.Any(), "missing").Return(models.Internship{}, notFound)

	_, err := d.Internship(context.Background(), "missing")
	assert.ErrorIs(t, err, notFound)
}

func TestDashboard_FailuresAreIndependent(t *testing.T) {
	d, src, fake := newTestDashboard(t)

	src.EXPECT().FetchApplications(gomock.Any()).Return(nil, errors.New("boom")).Times(DefaultMaxRetries + 1)
	src.EXPECT().FetchInternships(gomock.Any()).Return([]models.Internship{{ID: "i1"}}, nil)

	d.SetActive(true)
	for i := 1; i <= DefaultMaxRetries; i++ {
		fake.Advance(time.Duration(i) * DefaultRetryBaseDelay)
	}

	assert.Equal(t, "boom", d.Applications.Snapshot().Error)
	assert.Len(t, d.Internships.Snapshot().Data, 1)
	assert.Empty(t, d.Internships.Snapshot().Error)
}
