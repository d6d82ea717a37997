package appointments

import (
	"context"
	"doctor-appointment-service/internal/app/contracts"
	"doctor-appointment-service/internal/app/models"
	"doctor-appointment-service/internal/pkg/constvars"
	"doctor-appointment-service/internal/pkg/exceptions"
	"doctor-appointment-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type availabilityChecker struct {
	DoctorUsecase         contracts.DoctorUsecase
	AppointmentRepository contracts.AppointmentRepository
	Log                   *zap.Logger
}

func NewAvailabilityChecker(
	doctorUsecase contracts.DoctorUsecase,
	appointmentRepository contracts.AppointmentRepository,
	logger *zap.Logger,
) contracts.AvailabilityChecker {
	return &availabilityChecker{
		DoctorUsecase:         doctorUsecase,
		AppointmentRepository: appointmentRepository,
		Log:                   logger,
	}
}

// IsAvailable treats an unknown doctor the same as a slot the doctor does not offer.
func (c *availabilityChecker) IsAvailable(ctx context.Context, doctorID, date, timeSlot, excludeAppointmentID string) (bool, error) {
	requestID := utils.GetRequestID(ctx)

	doctor, err := c.DoctorUsecase.FindByID(ctx, doctorID)
	if err != nil {
		if exceptions.IsKind(err, exceptions.KindNotFound) || exceptions.IsKind(err, exceptions.KindValidation) {
			c.logResult(requestID, doctorID, date, timeSlot, false)
			return false, nil
		}
		return false, err
	}

	if !doctor.OffersSlot(timeSlot) {
		c.logResult(requestID, doctorID, date, timeSlot, false)
		return false, nil
	}

	taken, err := c.AppointmentRepository.ExistsBooked(ctx, doctorID, date, timeSlot, excludeAppointmentID)
	if err != nil {
		c.Log.Error("availabilityChecker.IsAvailable error calling AppointmentRepository.ExistsBooked",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return false, err
	}

	c.logResult(requestID, doctorID, date, timeSlot, !taken)
	return !taken, nil
}

// FreeSlots returns the doctor's slot labels that are not booked on date, in the doctor's order.
func (c *availabilityChecker) FreeSlots(ctx context.Context, doctor *models.Doctor, date string) ([]string, error) {
	booked, err := c.AppointmentRepository.FindBookedSlots(ctx, doctor.ID.Hex(), date)
	if err != nil {
		c.Log.Error("availabilityChecker.FreeSlots error calling AppointmentRepository.FindBookedSlots",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}

	taken := make(map[string]struct{}, len(booked))
	for _, slot := range booked {
		taken[slot] = struct{}{}
	}

	free := make([]string, 0, len(doctor.AvailableSlots))
	for _, slot := range doctor.AvailableSlots {
		if _, ok := taken[slot]; !ok {
			free = append(free, slot)
		}
	}
	return free, nil
}

func (c *availabilityChecker) logResult(requestID, doctorID, date, timeSlot string, available bool) {
	c.Log.Debug("availabilityChecker.IsAvailable result",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.LoggingDateKey, date),
		zap.String(constvars.LoggingTimeSlotKey, timeSlot),
		zap.Bool(constvars.LoggingAvailableKey, available),
	)
}
