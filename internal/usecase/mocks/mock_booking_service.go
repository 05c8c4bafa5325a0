package mocks

import (
	"context"

	"github.com/Surendar2005/BookMyShow/internal/dto/request"
	"github.com/Surendar2005/BookMyShow/internal/dto/response"

	"github.com/stretchr/testify/mock"
)

// MockBookingService is a mock implementation of usecase.BookingService
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingSummary, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.BookingSummary), args.Error(1)
}

func (m *MockBookingService) ListBookings(ctx context.Context) ([]response.BookingRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.BookingRecord), args.Error(1)
}

func (m *MockBookingService) TicketQR(ctx context.Context, bookingID string) ([]byte, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
