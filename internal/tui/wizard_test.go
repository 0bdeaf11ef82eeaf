package tui

import (
	"net/http"
	"net/http/httptest"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fjordhomes/listing-composer/internal/client"
	"github.com/fjordhomes/listing-composer/internal/geocode"
	"github.com/fjordhomes/listing-composer/internal/listing"
	"github.com/fjordhomes/listing-composer/internal/media"
	"github.com/fjordhomes/listing-composer/internal/submit"
)

type nopPreviewer struct{}

func (nopPreviewer) Open(string) (string, error) { return "handle", nil }
func (nopPreviewer) Release(string) error        { return nil }

func newTestModel(t *testing.T, serverURL string) *Model {
	t.Helper()
	d := listing.New(listing.TypeProperty)
	d.SetCategory(listing.CategoryResidential)
	d.SetNeed(listing.NeedBuy)
	d.Title = "Sunny villa"
	d.Price = 250000
	d.Location.City = "Accra"

	reg := media.NewRegistry(nopPreviewer{})
	pipeline := submit.New(client.New(serverURL, "tok"))
	return New(d, reg, pipeline, geocode.NewClient())
}

func TestStepSequenceMatchesType(t *testing.T) {
	m := newTestModel(t, "http://localhost:0")
	assert.Len(t, m.steps, 6, "property wizard should have six steps")

	svc := listing.New(listing.TypeService)
	reg := media.NewRegistry(nopPreviewer{})
	sm := New(svc, reg, submit.New(client.New("http://localhost:0", "")), geocode.NewClient())
	assert.Len(t, sm.steps, 5, "service wizard should have five steps")
}

func TestStepCompletionAdvances(t *testing.T) {
	m := newTestModel(t, "http://localhost:0")
	require.Equal(t, 0, m.ctrl.Active())

	m.Update(BasicsDoneMsg{})
	assert.Equal(t, 1, m.ctrl.Active())

	m.Update(DetailsDoneMsg{})
	assert.Equal(t, 2, m.ctrl.Active())
}

func TestEscGoesBack(t *testing.T) {
	m := newTestModel(t, "http://localhost:0")
	m.Update(BasicsDoneMsg{})
	require.Equal(t, 1, m.ctrl.Active())

	m.Update(tea.KeyPressMsg{Text: "esc"})
	assert.Equal(t, 0, m.ctrl.Active())
}

func TestEscOnFirstStepCancels(t *testing.T) {
	m := newTestModel(t, "http://localhost:0")
	_, cmd := m.Update(tea.KeyPressMsg{Text: "esc"})
	assert.True(t, m.cancelled)
	require.NotNil(t, cmd, "expected a quit command")
}

func TestSkipOnlyWorksOnOptionalStep(t *testing.T) {
	m := newTestModel(t, "http://localhost:0")

	// First step is required
	m.Update(tea.KeyPressMsg{Text: "ctrl+s"})
	assert.Equal(t, 0, m.ctrl.Active())

	// Details step is optional
	m.Update(BasicsDoneMsg{})
	m.Update(tea.KeyPressMsg{Text: "ctrl+s"})
	assert.Equal(t, 2, m.ctrl.Active())
	assert.True(t, m.ctrl.IsSkipped(1))
}

func TestSubmitSuccessQuits(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	m := newTestModel(t, server.URL)

	_, cmd := m.Update(SubmitRequestedMsg{})
	require.NotNil(t, cmd)
	msg := cmd()
	done, ok := msg.(submitDoneMsg)
	require.True(t, ok, "expected submitDoneMsg, got %T", msg)
	require.NoError(t, done.Err)

	_, quit := m.Update(done)
	assert.True(t, m.outcome.Submitted)
	assert.True(t, m.outcome.Created)
	require.NotNil(t, quit, "expected a quit command")
}

func TestSubmitFailureKeepsDraft(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"errors":[{"path":["price"],"message":"required"}]}`))
	}))
	defer server.Close()

	m := newTestModel(t, server.URL)

	_, cmd := m.Update(SubmitRequestedMsg{})
	require.NotNil(t, cmd)
	done, ok := cmd().(submitDoneMsg)
	require.True(t, ok)
	require.Error(t, done.Err)

	m.Update(done)
	assert.False(t, m.outcome.Submitted)
	assert.Contains(t, m.errMsg, "price")
	assert.Equal(t, "Sunny villa", m.draft.Title, "draft must survive a failed submission")
	assert.False(t, m.ctrl.Submitting(), "submit gate must reopen after failure")
}

func TestSubmitGateRejectsSecondRequest(t *testing.T) {
	m := newTestModel(t, "http://localhost:0")

	_, first := m.Update(SubmitRequestedMsg{})
	require.NotNil(t, first)

	_, second := m.Update(SubmitRequestedMsg{})
	assert.Nil(t, second, "second submit while in flight should be ignored")
}

func TestCoordsResolvedUpdatesDraft(t *testing.T) {
	m := newTestModel(t, "http://localhost:0")

	m.Update(coordsResolvedMsg{Coords: geocode.Coords{Lat: 5.56, Lon: -0.17}})
	assert.Equal(t, "5.56", m.draft.Location.Latitude)
	assert.Equal(t, "-0.17", m.draft.Location.Longitude)
}
