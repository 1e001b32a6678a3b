//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"shareit/internal/handler/dto/request"
	"shareit/internal/handler/dto/response"
	"shareit/tests/common/dbtest"
	"shareit/tests/common/httptest"
	"shareit/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	usersURL    = "/users"
	itemsURL    = "/items"
	bookingsURL = "/bookings"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) createUser(t *testing.T, name, email string) string {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, usersURL,
		request.CreateUserRequest{Name: name, Email: email}, "")
	require.Equal(t, http.StatusCreated, w.Code, "Should create user successfully")

	var created response.UserResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	return created.ID.String()
}

func (s *BookingSuite) createItem(t *testing.T, ownerID, name, description string, available bool) string {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, itemsURL,
		request.CreateItemRequest{Name: name, Description: description, Available: &available}, ownerID)
	require.Equal(t, http.StatusCreated, w.Code, "Should create item successfully")

	var created response.ItemResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	return created.ID.String()
}

// =============================================================================
// TestBookingLifecycle - request, decision, visibility
// =============================================================================

func (s *BookingSuite) TestBookingLifecycle() {
	s.Run("Normal case: booker requests and owner approves", func() {
		t := s.T()

		ownerID := s.createUser(t, "Owner", "owner@example.com")
		bookerID := s.createUser(t, "Booker", "booker@example.com")
		itemID := s.createItem(t, ownerID, "Drill", "Cordless drill", true)

		start := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
		end := start.Add(24 * time.Hour)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{
				ItemID:    uuid.MustParse(itemID),
				StartDate: start,
				EndDate:   end,
			}, bookerID)
		require.Equal(t, http.StatusCreated, w.Code, "Should create booking successfully")

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Equal(t, "WAITING", created.Status)

		patchURL := fmt.Sprintf("%s/%s?approved=true", bookingsURL, created.ID)
		dw := httptest.PerformRequest(t, s.Router, http.MethodPatch, patchURL, nil, ownerID)
		require.Equal(t, http.StatusOK, dw.Code, "Owner should approve successfully")

		var approved response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, dw.Body, &approved))

		expected := &response.BookingResponse{
			ID:        created.ID,
			StartDate: start,
			EndDate:   end,
			Status:    "APPROVED",
			Booker: response.BookerResponse{
				ID:   uuid.MustParse(bookerID),
				Name: "Booker",
			},
			Item: response.BookedItemResponse{
				ID:      uuid.MustParse(itemID),
				Name:    "Drill",
				OwnerID: uuid.MustParse(ownerID),
			},
		}

		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.BookingResponse{}, "CreatedAt", "UpdatedAt"),
			cmpopts.EquateApproxTime(time.Second),
		}
		if diff := cmp.Diff(expected, &approved, opts...); diff != "" {
			t.Errorf("Booking response mismatch (-want +got):\n%s", diff)
		}

		// A second decision must fail.
		rw := httptest.PerformRequest(t, s.Router, http.MethodPatch, patchURL, nil, ownerID)
		require.Equal(t, http.StatusBadRequest, rw.Code, "Second decision should fail")
	})

	s.Run("Normal case: owner rejects a waiting booking", func() {
		t := s.T()

		ownerID := s.createUser(t, "Owner", "owner@example.com")
		bookerID := s.createUser(t, "Booker", "booker@example.com")
		itemID := s.createItem(t, ownerID, "Drill", "Cordless drill", true)

		start := time.Now().Add(24 * time.Hour)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{
				ItemID:    uuid.MustParse(itemID),
				StartDate: start,
				EndDate:   start.Add(24 * time.Hour),
			}, bookerID)
		require.Equal(t, http.StatusCreated, w.Code)

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		dw := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf("%s/%s?approved=false", bookingsURL, created.ID), nil, ownerID)
		require.Equal(t, http.StatusOK, dw.Code)

		var rejected response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, dw.Body, &rejected))
		require.Equal(t, "REJECTED", rejected.Status)
	})

	s.Run("Error case: booking an unavailable item fails", func() {
		t := s.T()

		ownerID := s.createUser(t, "Owner", "owner@example.com")
		bookerID := s.createUser(t, "Booker", "booker@example.com")
		itemID := s.createItem(t, ownerID, "Drill", "Cordless drill", false)

		start := time.Now().Add(24 * time.Hour)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{
				ItemID:    uuid.MustParse(itemID),
				StartDate: start,
				EndDate:   start.Add(24 * time.Hour),
			}, bookerID)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "not available")
	})

	s.Run("Error case: dates in the past fail with every violation reported", func() {
		t := s.T()

		ownerID := s.createUser(t, "Owner", "owner@example.com")
		bookerID := s.createUser(t, "Booker", "booker@example.com")
		itemID := s.createItem(t, ownerID, "Drill", "Cordless drill", true)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{
				ItemID:    uuid.MustParse(itemID),
				StartDate: time.Now().Add(-48 * time.Hour),
				EndDate:   time.Now().Add(-72 * time.Hour),
			}, bookerID)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid booking period")
	})

	s.Run("Error case: non-owner cannot decide", func() {
		t := s.T()

		ownerID := s.createUser(t, "Owner", "owner@example.com")
		bookerID := s.createUser(t, "Booker", "booker@example.com")
		itemID := s.createItem(t, ownerID, "Drill", "Cordless drill", true)

		start := time.Now().Add(24 * time.Hour)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{
				ItemID:    uuid.MustParse(itemID),
				StartDate: start,
				EndDate:   start.Add(24 * time.Hour),
			}, bookerID)
		require.Equal(t, http.StatusCreated, w.Code)

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		dw := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf("%s/%s?approved=true", bookingsURL, created.ID), nil, bookerID)
		httptest.AssertErrorResponse(t, dw, http.StatusBadRequest, "Only the item owner")

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("%s/%s", bookingsURL, created.ID), nil, ownerID)
		require.Equal(t, http.StatusOK, gw.Code, "Booking should stay visible to the owner")
	})

	s.Run("Error case: booking is invisible to strangers", func() {
		t := s.T()

		ownerID := s.createUser(t, "Owner", "owner@example.com")
		bookerID := s.createUser(t, "Booker", "booker@example.com")
		strangerID := s.createUser(t, "Stranger", "stranger@example.com")
		itemID := s.createItem(t, ownerID, "Drill", "Cordless drill", true)

		start := time.Now().Add(24 * time.Hour)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{
				ItemID:    uuid.MustParse(itemID),
				StartDate: start,
				EndDate:   start.Add(24 * time.Hour),
			}, bookerID)
		require.Equal(t, http.StatusCreated, w.Code)

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("%s/%s", bookingsURL, created.ID), nil, strangerID)
		httptest.AssertErrorResponse(t, gw, http.StatusBadRequest, "not visible")
	})

	s.Run("Error case: missing sharer header", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "X-Sharer-User-Id header required")
	})
}

// =============================================================================
// TestBookingListing - state filters on both listing endpoints
// =============================================================================

func (s *BookingSuite) TestBookingListing() {
	s.Run("Normal case: state filters partition the result set", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "Booker", "booker@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Drill", "Cordless drill", true)

		now := time.Now()
		dbtest.CreateTestBooking(t, s.DB, itemID, bookerID, now.Add(-48*time.Hour), now.Add(-24*time.Hour), "APPROVED")
		dbtest.CreateTestBooking(t, s.DB, itemID, bookerID, now.Add(-time.Hour), now.Add(time.Hour), "APPROVED")
		dbtest.CreateTestBooking(t, s.DB, itemID, bookerID, now.Add(24*time.Hour), now.Add(48*time.Hour), "WAITING")
		dbtest.CreateTestBooking(t, s.DB, itemID, bookerID, now.Add(72*time.Hour), now.Add(96*time.Hour), "REJECTED")

		cases := []struct {
			state string
			count int
		}{
			{state: "", count: 4},
			{state: "ALL", count: 4},
			{state: "PAST", count: 1},
			{state: "CURRENT", count: 1},
			{state: "FUTURE", count: 2},
			{state: "WAITING", count: 1},
			{state: "REJECTED", count: 1},
		}

		for _, tc := range cases {
			url := bookingsURL
			if tc.state != "" {
				url += "?state=" + tc.state
			}
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, bookerID.String())
			require.Equal(t, http.StatusOK, w.Code)

			var views []response.BookingResponse
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &views))
			require.Len(t, views, tc.count, "state %q should match %d bookings", tc.state, tc.count)

			ow := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/owner?state="+tc.state, nil, ownerID.String())
			require.Equal(t, http.StatusOK, ow.Code)

			var ownerViews []response.BookingResponse
			require.NoError(t, httptest.DecodeResponseBody(t, ow.Body, &ownerViews))
			require.Len(t, ownerViews, tc.count, "owner state %q should match %d bookings", tc.state, tc.count)
		}
	})

	s.Run("Normal case: listings are ordered newest start first", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "Booker", "booker@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Drill", "Cordless drill", true)

		now := time.Now()
		early := dbtest.CreateTestBooking(t, s.DB, itemID, bookerID, now.Add(24*time.Hour), now.Add(48*time.Hour), "WAITING")
		late := dbtest.CreateTestBooking(t, s.DB, itemID, bookerID, now.Add(72*time.Hour), now.Add(96*time.Hour), "WAITING")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, bookerID.String())
		require.Equal(t, http.StatusOK, w.Code)

		var views []response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &views))
		require.Len(t, views, 2)
		require.Equal(t, late, views[0].ID)
		require.Equal(t, early, views[1].ID)
	})

	s.Run("Error case: unknown state filter", func() {
		t := s.T()

		bookerID := dbtest.CreateTestUser(t, s.DB, "Booker", "booker@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?state=UNSUPPORTED", nil, bookerID.String())
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Unknown state filter")
	})

	s.Run("Error case: listing for an unknown user", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, uuid.New().String())
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "User not found")
	})
}

// =============================================================================
// TestCommenting - comment eligibility via finished bookings
// =============================================================================

func (s *BookingSuite) TestCommenting() {
	s.Run("Normal case: past booker can comment regardless of approval", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "Booker", "booker@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Drill", "Cordless drill", true)

		now := time.Now()
		dbtest.CreateTestBooking(t, s.DB, itemID, bookerID, now.Add(-48*time.Hour), now.Add(-24*time.Hour), "REJECTED")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/comment", itemsURL, itemID),
			request.AddCommentRequest{Text: "Worked fine"}, bookerID.String())
		require.Equal(t, http.StatusCreated, w.Code, "Past booker should be able to comment")

		var comment response.CommentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &comment))
		require.Equal(t, "Worked fine", comment.Text)
		require.Equal(t, "Booker", comment.AuthorName)

		// Comment must surface on the item detail.
		iw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("%s/%s", itemsURL, itemID), nil, "")
		require.Equal(t, http.StatusOK, iw.Code)

		var item response.ItemResponse
		require.NoError(t, httptest.DecodeResponseBody(t, iw.Body, &item))
		require.Len(t, item.Comments, 1)
	})

	s.Run("Error case: commenting without a finished booking", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "Booker", "booker@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Drill", "Cordless drill", true)

		now := time.Now()
		dbtest.CreateTestBooking(t, s.DB, itemID, bookerID, now.Add(24*time.Hour), now.Add(48*time.Hour), "APPROVED")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/comment", itemsURL, itemID),
			request.AddCommentRequest{Text: "Too early"}, bookerID.String())
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "finished booking")
	})
}

