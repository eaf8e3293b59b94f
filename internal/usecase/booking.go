package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/flight-search/flightsearch-app/internal/domain"
)

//go:generate mockgen -source=booking.go -destination=mock_booking.go -package=usecase

// BookingService looks up the services of a booking.
type BookingService interface {
	// ListServices returns the services of a booking ordered by id, or
	// *domain.BookingNotFoundError.
	ListServices(ctx context.Context, bookingID string) ([]domain.ServiceItem, error)

	// GetService returns one service of a booking, or *domain.BookingNotFoundError
	// / *domain.ServiceNotFoundError.
	GetService(ctx context.Context, bookingID, serviceID string) (domain.ServiceItem, error)
}

type bookingService struct {
	bookings map[string]map[string]domain.ServiceItem
}

// NewBookingService indexes services by booking id. Booking ids are matched
// ignoring case, service ids exactly.
func NewBookingService(services map[string][]domain.ServiceItem) BookingService {
	index := make(map[string]map[string]domain.ServiceItem, len(services))
	for bookingID, items := range services {
		byID := make(map[string]domain.ServiceItem, len(items))
		for _, s := range items {
			byID[s.ID] = s
		}
		index[strings.ToUpper(bookingID)] = byID
	}
	return &bookingService{bookings: index}
}

func (s *bookingService) booking(ctx context.Context, bookingID string) (map[string]domain.ServiceItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	services, ok := s.bookings[strings.ToUpper(bookingID)]
	if !ok {
		return nil, &domain.BookingNotFoundError{BookingID: bookingID}
	}
	return services, nil
}

// ListServices implements BookingService.ListServices.
func (s *bookingService) ListServices(ctx context.Context, bookingID string) ([]domain.ServiceItem, error) {
	services, err := s.booking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.ServiceItem, 0, len(services))
	for _, item := range services {
		result = append(result, item)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// GetService implements BookingService.GetService.
func (s *bookingService) GetService(ctx context.Context, bookingID, serviceID string) (domain.ServiceItem, error) {
	services, err := s.booking(ctx, bookingID)
	if err != nil {
		return domain.ServiceItem{}, err
	}
	item, ok := services[serviceID]
	if !ok {
		return domain.ServiceItem{}, &domain.ServiceNotFoundError{BookingID: bookingID, ServiceID: serviceID}
	}
	return item, nil
}
