package booking

import (
	"strings"

	"studio-backend/internal/auth"
	"studio-backend/internal/database"
	"studio-backend/internal/models"
	"studio-backend/internal/notify"

	"github.com/gofiber/fiber/v2"
)

type CreateBookingRequest struct {
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	ServiceID     string `json:"service_id"`
	ServiceName   string `json:"service_name"`
	Description   string `json:"description"`
	PreferredDate string `json:"preferred_date"`
	PreferredTime string `json:"preferred_time"`
	Hours         int    `json:"hours"`
}

type StatusUpdateRequest struct {
	Status models.BookingStatus `json:"status"`
}

type BookingResponse struct {
	ID            string               `json:"id"`
	FullName      string               `json:"full_name"`
	Email         string               `json:"email"`
	Phone         string               `json:"phone"`
	ServiceID     string               `json:"service_id"`
	ServiceName   string               `json:"service_name"`
	Description   string               `json:"description"`
	PreferredDate string               `json:"preferred_date"`
	PreferredTime string               `json:"preferred_time"`
	Hours         int                  `json:"hours"`
	Status        models.BookingStatus `json:"status"`
	CreatedAt     string               `json:"created_at"`
}

func bookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		FullName:      b.FullName,
		Email:         b.Email,
		Phone:         b.Phone,
		ServiceID:     b.ServiceID,
		ServiceName:   b.ServiceName,
		Description:   b.Description,
		PreferredDate: b.PreferredDate,
		PreferredTime: b.PreferredTime,
		Hours:         b.Hours,
		Status:        b.Status,
		CreatedAt:     b.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// CreateBookingHandler takes public booking enquiries. The requester
// acknowledgment and the admin alert both fire after the insert; neither can
// fail the request.
func CreateBookingHandler(notifier *notify.Notifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateBookingRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.FullName = strings.TrimSpace(body.FullName)
		if body.FullName == "" || body.Email == "" || body.Phone == "" ||
			body.ServiceName == "" || body.PreferredDate == "" || body.PreferredTime == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name, email, phone, service, date and time are required")
		}
		if body.Hours < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Hours cannot be negative")
		}

		booking := models.Booking{
			FullName:      body.FullName,
			Email:         body.Email,
			Phone:         body.Phone,
			ServiceID:     body.ServiceID,
			ServiceName:   body.ServiceName,
			Description:   body.Description,
			PreferredDate: body.PreferredDate,
			PreferredTime: body.PreferredTime,
			Hours:         body.Hours,
			Status:        models.BookingPending,
		}
		if err := database.DB.Create(&booking).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create booking")
		}

		notifier.BookingCreated(&booking)

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "Booking created successfully",
			"booking": bookingResponse(&booking),
		})
	}
}

func ListBookingsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var bookings []models.Booking
		if err := database.DB.Order("created_at desc").Find(&bookings).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list bookings")
		}

		res := make([]BookingResponse, 0, len(bookings))
		for i := range bookings {
			res = append(res, bookingResponse(&bookings[i]))
		}
		return c.JSON(res)
	}
}

// ListUserBookingsHandler returns the authenticated user's bookings, matched
// by account email.
func ListUserBookingsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := auth.Claims(c)

		var user models.User
		if err := database.DB.First(&user, "id = ?", claims.SubjectID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}

		var bookings []models.Booking
		if err := database.DB.Where("email = ?", user.Email).
			Order("created_at desc").Find(&bookings).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list bookings")
		}

		res := make([]BookingResponse, 0, len(bookings))
		for i := range bookings {
			res = append(res, bookingResponse(&bookings[i]))
		}
		return c.JSON(res)
	}
}

// TrackBookingHandler is unauthenticated; knowing both the booking id and the
// email it was made with acts as the capability.
func TrackBookingHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := c.Query("email")
		if email == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Email query parameter is required")
		}

		var booking models.Booking
		if err := database.DB.Where("id = ? AND email = ?", c.Params("id"), email).
			First(&booking).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Booking not found")
		}
		return c.JSON(bookingResponse(&booking))
	}
}

// UpdateStatusHandler persists the new status first; the notification keyed
// by it fires afterwards and cannot roll the write back.
func UpdateStatusHandler(notifier *notify.Notifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body StatusUpdateRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if body.Status == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Status is required")
		}

		var booking models.Booking
		if err := database.DB.First(&booking, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Booking not found")
		}

		if err := database.DB.Model(&booking).Update("status", body.Status).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update booking")
		}
		booking.Status = body.Status

		notifier.BookingStatusChanged(&booking)

		return c.JSON(bookingResponse(&booking))
	}
}

func DeleteBookingHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		result := database.DB.Delete(&models.Booking{}, "id = ?", c.Params("id"))
		if result.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete booking")
		}
		if result.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Booking not found")
		}
		return c.JSON(fiber.Map{"message": "Booking deleted"})
	}
}
