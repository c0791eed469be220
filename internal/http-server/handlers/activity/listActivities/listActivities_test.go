package listActivities

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"activityBoard/internal/http-server/handlers/activity/listActivities/mocks"
	"activityBoard/internal/lib/flash"
	"activityBoard/internal/lib/logger/handlers/slogdiscard"
	"activityBoard/internal/models"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testRoster() models.Roster {
	return models.Roster{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
		},
	}
}

func TestListActivitiesHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		mockSetup      func(mock *mocks.ActivitiesLister)
		expectedStatus int
		checkDoc       func(t *testing.T, doc *goquery.Document)
	}{
		{
			name: "Success",
			mockSetup: func(m *mocks.ActivitiesLister) {
				m.On("List", mock.Anything).Return(testRoster(), nil)
			},
			expectedStatus: http.StatusOK,
			checkDoc: func(t *testing.T, doc *goquery.Document) {
				cards := doc.Find(".activity-card")
				require.Equal(t, 2, cards.Length())
				assert.Contains(t, cards.Eq(0).Text(), "Capacity: 2/12")
				assert.Contains(t, cards.Eq(1).Text(), "Capacity: 0/20")
				assert.Equal(t, "No participants yet", cards.Eq(1).Find(".no-participants").Text())
				assert.Equal(t, 3, doc.Find("select#activity option").Length())

				class, _ := doc.Find("#message").Attr("class")
				assert.Equal(t, "hidden", class)
			},
		},
		{
			name: "Empty roster",
			mockSetup: func(m *mocks.ActivitiesLister) {
				m.On("List", mock.Anything).Return(models.Roster{}, nil)
			},
			expectedStatus: http.StatusOK,
			checkDoc: func(t *testing.T, doc *goquery.Document) {
				assert.Zero(t, doc.Find(".activity-card").Length())
				assert.Zero(t, doc.Find("#activities-list p.error").Length())
				assert.Equal(t, 1, doc.Find("select#activity option").Length())
			},
		},
		{
			name: "Upstream failure",
			mockSetup: func(m *mocks.ActivitiesLister) {
				m.On("List", mock.Anything).Return(nil, errors.New("connection refused"))
			},
			expectedStatus: http.StatusBadGateway,
			checkDoc: func(t *testing.T, doc *goquery.Document) {
				assert.Zero(t, doc.Find(".activity-card").Length())
				assert.Equal(t,
					"Failed to load activities. Please try again later.",
					doc.Find("#activities-list p.error").Text(),
				)
				assert.Equal(t, 1, doc.Find("select#activity option").Length())
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockLister := mocks.NewActivitiesLister(t)
			tc.mockSetup(mockLister)

			handler := New(logger, mockLister)

			req, err := http.NewRequest(http.MethodGet, "/", nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
			assert.Equal(t, "no-store", rr.Header().Get("Cache-Control"))

			doc, err := goquery.NewDocumentFromReader(rr.Body)
			require.NoError(t, err)
			tc.checkDoc(t, doc)
		})
	}
}

func TestListActivitiesShowsFlash(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	mockLister := mocks.NewActivitiesLister(t)
	mockLister.On("List", mock.Anything).Return(testRoster(), nil)

	msg := flash.Error("Activity is full")
	msg.Email = "emma@mergington.edu"
	msg.Activity = "Chess Club"

	setter := httptest.NewRecorder()
	flash.Set(setter, msg)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range setter.Result().Cookies() {
		req.AddCookie(c)
	}

	rr := httptest.NewRecorder()
	New(logger, mockLister).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	doc, err := goquery.NewDocumentFromReader(rr.Body)
	require.NoError(t, err)

	banner := doc.Find("#message")
	class, _ := banner.Attr("class")
	assert.Equal(t, "message error", class)
	assert.Equal(t, "Activity is full", banner.Text())

	email, _ := doc.Find("input#email").Attr("value")
	assert.Equal(t, "emma@mergington.edu", email)

	_, selected := doc.Find(`select#activity option[value="Chess Club"]`).Attr("selected")
	assert.True(t, selected)

	var cleared bool
	for _, c := range rr.Result().Cookies() {
		if c.Name == flash.CookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "flash cookie should be cleared after display")
}

func TestRepeatedLoadsDoNotDuplicateOptions(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	mockLister := mocks.NewActivitiesLister(t)
	mockLister.On("List", mock.Anything).Return(testRoster(), nil)

	handler := New(logger, mockLister)

	for i := 0; i < 3; i++ {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		doc, err := goquery.NewDocumentFromReader(rr.Body)
		require.NoError(t, err)

		var values []string
		doc.Find("select#activity option").Each(func(_ int, o *goquery.Selection) {
			v, _ := o.Attr("value")
			values = append(values, v)
		})
		assert.Equal(t, []string{"", "Chess Club", "Programming Class"}, values)
	}

	mockLister.AssertNumberOfCalls(t, "List", 3)
}
