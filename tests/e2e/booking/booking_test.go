//go:build e2e

package booking_test

import (
	"net/http"
	"testing"
	"time"

	"world-hotels/internal/handler/dto/response"
	"world-hotels/tests/common/builder"
	"world-hotels/tests/common/dbtest"
	"world-hotels/tests/common/httptest"
	"world-hotels/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const bookingsURL = "/api/bookings"

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) TestCreateBooking() {
	s.Run("Normal case: booking is created and priced", func() {
		t := s.T()

		// Equal peak and off-peak rates make the expected price independent
		// of the month the test runs in.
		hotelID := dbtest.CreateTestHotel(t, s.DB, "London", 100, 100, 100)
		userID := uuid.New()

		// Inside 45 days, so no advance discount applies
		checkIn := time.Now().AddDate(0, 0, 10)
		reqBody := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.HotelID = hotelID
			b.CheckIn = checkIn
			b.Duration = 3
		}).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, userID)
		httptest.RequireStatus(t, w, http.StatusCreated)

		var created response.BookingResponse
		httptest.DecodeJSON(t, w, &created)
		require.NotEqual(t, uuid.Nil, created.ID)
		require.Equal(t, hotelID, created.HotelID)
		require.Equal(t, "London", created.City)
		require.Equal(t, 300.00, created.TotalPrice)
	})

	s.Run("Error case: unknown hotel returns 404", func() {
		t := s.T()

		reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, uuid.New())
		httptest.RequireStatus(t, w, http.StatusNotFound)
	})

	s.Run("Error case: full hotel returns 409", func() {
		t := s.T()

		hotelID := dbtest.CreateTestHotel(t, s.DB, "Paris", 1, 200, 150)
		checkIn := time.Now().AddDate(0, 0, 10)
		dbtest.CreateTestBooking(t, s.DB, hotelID, uuid.New(), "Standard", checkIn, 2, 300)

		reqBody := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.HotelID = hotelID
			b.CheckIn = checkIn
		}).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, uuid.New())
		httptest.RequireStatus(t, w, http.StatusConflict)

		// A different date is still bookable
		reqBody.CheckIn = checkIn.AddDate(0, 0, 1).Format("2006-01-02")
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, uuid.New())
		httptest.RequireStatus(t, w, http.StatusCreated)
	})

	s.Run("Error case: duration above maximum returns 400", func() {
		t := s.T()

		hotelID := dbtest.CreateTestHotel(t, s.DB, "Oslo", 10, 100, 100)
		reqBody := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.HotelID = hotelID
			b.Duration = 31
		}).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, uuid.New())
		httptest.RequireStatus(t, w, http.StatusBadRequest)
	})

	s.Run("Error case: missing user header returns 401", func() {
		t := s.T()

		reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, uuid.Nil)
		httptest.RequireStatus(t, w, http.StatusUnauthorized)
	})
}

func (s *BookingSuite) TestListOwnBookings() {
	s.Run("Normal case: only own bookings with cancellation terms", func() {
		t := s.T()

		hotelID := dbtest.CreateTestHotel(t, s.DB, "London", 100, 100, 100)
		userID := uuid.New()
		otherID := uuid.New()

		dbtest.CreateTestBooking(t, s.DB, hotelID, userID, "Standard",
			time.Now().AddDate(0, 0, 70), 2, 200)
		dbtest.CreateTestBooking(t, s.DB, hotelID, userID, "Double",
			time.Now().AddDate(0, 0, 10), 2, 200)
		dbtest.CreateTestBooking(t, s.DB, hotelID, otherID, "Family",
			time.Now().AddDate(0, 0, 10), 2, 200)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, userID)
		httptest.RequireStatus(t, w, http.StatusOK)

		var items []response.UserBookingResponse
		httptest.DecodeJSON(t, w, &items)
		require.Len(t, items, 2)

		// Ordered by check-in descending: the far booking first
		require.True(t, items[0].CanCancel)
		require.Equal(t, 0.0, items[0].CancelFee)

		require.False(t, items[1].CanCancel)
		require.Equal(t, 200.0, items[1].CancelFee)
	})
}

func (s *BookingSuite) TestCancelBooking() {
	s.Run("Normal case: free cancellation outside 60 days", func() {
		t := s.T()

		hotelID := dbtest.CreateTestHotel(t, s.DB, "London", 100, 100, 100)
		userID := uuid.New()
		bookingID := dbtest.CreateTestBooking(t, s.DB, hotelID, userID, "Standard",
			time.Now().AddDate(0, 0, 70), 2, 200)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, bookingsURL+"/"+bookingID.String(), nil, userID)
		httptest.RequireStatus(t, w, http.StatusOK)

		var resp response.CancelBookingResponse
		httptest.DecodeJSON(t, w, &resp)
		require.Equal(t, 0.0, resp.Fee)
		require.Equal(t, 0, dbtest.CountBookings(t, s.DB, hotelID))
	})

	s.Run("Normal case: half fee between 30 and 59 days", func() {
		t := s.T()

		hotelID := dbtest.CreateTestHotel(t, s.DB, "London", 100, 100, 100)
		userID := uuid.New()
		bookingID := dbtest.CreateTestBooking(t, s.DB, hotelID, userID, "Standard",
			time.Now().AddDate(0, 0, 45), 2, 200)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, bookingsURL+"/"+bookingID.String(), nil, userID)
		httptest.RequireStatus(t, w, http.StatusOK)

		var resp response.CancelBookingResponse
		httptest.DecodeJSON(t, w, &resp)
		require.Equal(t, 100.0, resp.Fee)
	})

	s.Run("Error case: inside 30 days cancellation is refused", func() {
		t := s.T()

		hotelID := dbtest.CreateTestHotel(t, s.DB, "London", 100, 100, 100)
		userID := uuid.New()
		bookingID := dbtest.CreateTestBooking(t, s.DB, hotelID, userID, "Standard",
			time.Now().AddDate(0, 0, 10), 2, 200)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, bookingsURL+"/"+bookingID.String(), nil, userID)
		httptest.RequireStatus(t, w, http.StatusConflict)
		require.Equal(t, 1, dbtest.CountBookings(t, s.DB, hotelID))
	})

	s.Run("Error case: someone else's booking looks missing", func() {
		t := s.T()

		hotelID := dbtest.CreateTestHotel(t, s.DB, "London", 100, 100, 100)
		bookingID := dbtest.CreateTestBooking(t, s.DB, hotelID, uuid.New(), "Standard",
			time.Now().AddDate(0, 0, 70), 2, 200)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, bookingsURL+"/"+bookingID.String(), nil, uuid.New())
		httptest.RequireStatus(t, w, http.StatusNotFound)
		require.Equal(t, 1, dbtest.CountBookings(t, s.DB, hotelID))
	})
}
