package appointments

import (
	"context"
	"doctor-appointment-service/internal/app/contracts"
	"doctor-appointment-service/internal/app/models"
	"doctor-appointment-service/internal/pkg/constvars"
	"doctor-appointment-service/internal/pkg/dto/requests"
	"doctor-appointment-service/internal/pkg/dto/responses"
	"doctor-appointment-service/internal/pkg/exceptions"
	"doctor-appointment-service/internal/pkg/utils"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	AvailabilityChecker   contracts.AvailabilityChecker
	DoctorUsecase         contracts.DoctorUsecase
	EventPublisher        contracts.AppointmentEventPublisher
	Log                   *zap.Logger
	now                   func() time.Time
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	availabilityChecker contracts.AvailabilityChecker,
	doctorUsecase contracts.DoctorUsecase,
	eventPublisher contracts.AppointmentEventPublisher,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		AvailabilityChecker:   availabilityChecker,
		DoctorUsecase:         doctorUsecase,
		EventPublisher:        eventPublisher,
		Log:                   logger,
		now:                   time.Now,
	}
}

func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.CreateAppointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrincipalIDKey, request.PrincipalID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
		zap.String(constvars.LoggingDateKey, request.Date),
		zap.String(constvars.LoggingTimeSlotKey, request.TimeSlot),
	)

	if request.PrincipalID == "" {
		return nil, exceptions.ErrMissingPrincipal(nil)
	}

	now := uc.now()
	date, ok := utils.ParseDate(request.Date, now.Location())
	if !ok {
		return nil, exceptions.ErrInvalidDateFormat(nil)
	}
	if !utils.IsValidTimeSlot(request.TimeSlot) {
		return nil, exceptions.ErrInvalidTimeSlotFormat(nil)
	}
	if !utils.IsTodayOrLater(date, now) {
		return nil, exceptions.ErrDateNotInFuture(nil)
	}
	doctorObjectID, err := primitive.ObjectIDFromHex(request.DoctorID)
	if err != nil {
		return nil, exceptions.ErrInvalidDoctorID(err)
	}

	available, err := uc.AvailabilityChecker.IsAvailable(ctx, request.DoctorID, request.Date, request.TimeSlot, "")
	if err != nil {
		uc.Log.Error("appointmentUsecase.CreateAppointment error calling AvailabilityChecker.IsAvailable",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !available {
		return nil, exceptions.ErrSlotNotAvailable(nil)
	}

	appointment := &models.Appointment{
		UserID:   request.PrincipalID,
		DoctorID: doctorObjectID,
		Date:     request.Date,
		TimeSlot: request.TimeSlot,
		Status:   models.AppointmentStatusBooked,
	}
	appointment.SetCreatedAtUpdatedAt(now)

	appointmentID, err := uc.AppointmentRepository.Insert(ctx, appointment)
	if err != nil {
		if exceptions.IsKind(err, exceptions.KindConflict) {
			uc.Log.Info("appointmentUsecase.CreateAppointment lost booking race",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
			)
			return nil, exceptions.ErrSlotNotAvailable(err)
		}
		uc.Log.Error("appointmentUsecase.CreateAppointment error calling AppointmentRepository.Insert",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.publish(ctx, constvars.EventAppointmentBooked, appointment, now)

	uc.Log.Info("appointmentUsecase.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return &responses.CreateAppointment{AppointmentID: appointmentID}, nil
}

// RescheduleAppointment validates every provided field before writing, so a request
// either applies all of its fields or none.
func (uc *appointmentUsecase) RescheduleAppointment(ctx context.Context, request *requests.RescheduleAppointment) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.RescheduleAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrincipalIDKey, request.PrincipalID),
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
	)

	if request.Date == "" && request.TimeSlot == "" {
		return exceptions.ErrNoFieldsToUpdate(nil)
	}

	current, err := uc.findOwned(ctx, request.AppointmentID, request.PrincipalID)
	if err != nil {
		return err
	}

	err = models.ValidateStatusTransition(current.Status, models.AppointmentStatusBooked)
	if err != nil {
		return err
	}

	now := uc.now()
	update := models.AppointmentUpdate{UpdatedAt: current.NextUpdatedAt(now)}
	targetDate := current.Date
	targetSlot := current.TimeSlot

	if request.Date != "" {
		date, ok := utils.ParseDate(request.Date, now.Location())
		if !ok {
			return exceptions.ErrInvalidDateFormat(nil)
		}
		if !utils.IsTodayOrLater(date, now) {
			return exceptions.ErrDateNotInFuture(nil)
		}
		targetDate = request.Date
		update.Date = &request.Date
	}

	if request.TimeSlot != "" {
		if !utils.IsValidTimeSlot(request.TimeSlot) {
			return exceptions.ErrInvalidTimeSlotFormat(nil)
		}
		targetSlot = request.TimeSlot
		update.TimeSlot = &request.TimeSlot
	}

	if targetDate != current.Date || targetSlot != current.TimeSlot {
		available, err := uc.AvailabilityChecker.IsAvailable(ctx, current.DoctorID.Hex(), targetDate, targetSlot, current.ID.Hex())
		if err != nil {
			uc.Log.Error("appointmentUsecase.RescheduleAppointment error calling AvailabilityChecker.IsAvailable",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return err
		}
		if !available {
			return exceptions.ErrNewSlotNotAvailable(nil)
		}
	}

	matched, err := uc.AppointmentRepository.UpdateIfStatus(ctx, request.AppointmentID, request.PrincipalID, models.AppointmentStatusBooked, update)
	if err != nil {
		if exceptions.IsKind(err, exceptions.KindConflict) {
			return exceptions.ErrNewSlotNotAvailable(err)
		}
		uc.Log.Error("appointmentUsecase.RescheduleAppointment error calling AppointmentRepository.UpdateIfStatus",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if !matched {
		// cancelled between the read and the write
		return exceptions.ErrCannotUpdateCancelled(nil)
	}

	current.Date = targetDate
	current.TimeSlot = targetSlot
	current.UpdatedAt = update.UpdatedAt
	uc.publish(ctx, constvars.EventAppointmentRescheduled, current, now)

	uc.Log.Info("appointmentUsecase.RescheduleAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
	)
	return nil
}

func (uc *appointmentUsecase) CancelAppointment(ctx context.Context, request *requests.AppointmentByID) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.CancelAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrincipalIDKey, request.PrincipalID),
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
	)

	current, err := uc.findOwned(ctx, request.AppointmentID, request.PrincipalID)
	if err != nil {
		return err
	}

	err = models.ValidateStatusTransition(current.Status, models.AppointmentStatusCancelled)
	if err != nil {
		return err
	}

	now := uc.now()
	cancelled := models.AppointmentStatusCancelled
	update := models.AppointmentUpdate{
		Status:    &cancelled,
		UpdatedAt: current.NextUpdatedAt(now),
	}

	matched, err := uc.AppointmentRepository.UpdateIfStatus(ctx, request.AppointmentID, request.PrincipalID, models.AppointmentStatusBooked, update)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CancelAppointment error calling AppointmentRepository.UpdateIfStatus",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if !matched {
		return exceptions.ErrAppointmentAlreadyCancelled(nil)
	}

	current.Status = cancelled
	current.UpdatedAt = update.UpdatedAt
	uc.publish(ctx, constvars.EventAppointmentCancelled, current, now)

	uc.Log.Info("appointmentUsecase.CancelAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
	)
	return nil
}

func (uc *appointmentUsecase) FindAppointmentByID(ctx context.Context, request *requests.AppointmentByID) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.FindAppointmentByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
	)

	if request.PrincipalID == "" {
		return nil, exceptions.ErrMissingPrincipal(nil)
	}
	if !primitive.IsValidObjectID(request.AppointmentID) {
		return nil, exceptions.ErrInvalidAppointmentID(nil)
	}

	detail, err := uc.AppointmentRepository.FindDetailByIDAndUser(ctx, request.AppointmentID, request.PrincipalID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindAppointmentByID error calling AppointmentRepository.FindDetailByIDAndUser",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if detail == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}

	response := detail.ConvertIntoResponse()
	return &response, nil
}

func (uc *appointmentUsecase) ListForUser(ctx context.Context, principalID string) ([]responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.ListForUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrincipalIDKey, principalID),
	)

	if principalID == "" {
		return nil, exceptions.ErrMissingPrincipal(nil)
	}

	details, err := uc.AppointmentRepository.ListDetailsByUser(ctx, principalID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.ListForUser error calling AppointmentRepository.ListDetailsByUser",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.Appointment, len(details))
	for i := range details {
		response[i] = details[i].ConvertIntoResponse()
	}

	uc.Log.Info("appointmentUsecase.ListForUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(response)),
	)
	return response, nil
}

func (uc *appointmentUsecase) FindDoctorAvailability(ctx context.Context, request *requests.DoctorAvailability) (*responses.DoctorAvailability, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.FindDoctorAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
		zap.String(constvars.LoggingDateKey, request.Date),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	doctor, err := uc.DoctorUsecase.FindByID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}

	freeSlots, err := uc.AvailabilityChecker.FreeSlots(ctx, doctor, request.Date)
	if err != nil {
		return nil, err
	}

	return &responses.DoctorAvailability{
		DoctorID:  doctor.ID.Hex(),
		Date:      request.Date,
		FreeSlots: freeSlots,
	}, nil
}

// findOwned resolves an appointment for its owner. Foreign and missing ids both
// produce ErrAppointmentNotFound.
func (uc *appointmentUsecase) findOwned(ctx context.Context, appointmentID, principalID string) (*models.Appointment, error) {
	if principalID == "" {
		return nil, exceptions.ErrMissingPrincipal(nil)
	}
	if !primitive.IsValidObjectID(appointmentID) {
		return nil, exceptions.ErrInvalidAppointmentID(nil)
	}

	appointment, err := uc.AppointmentRepository.FindByIDAndUser(ctx, appointmentID, principalID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.findOwned error calling AppointmentRepository.FindByIDAndUser",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}
	return appointment, nil
}

// publish runs after the write has committed; a failed publish is logged and
// does not undo the booking.
func (uc *appointmentUsecase) publish(ctx context.Context, eventType string, appointment *models.Appointment, occurredAt time.Time) {
	event := models.NewAppointmentEvent(uuid.NewString(), eventType, appointment, occurredAt)
	err := uc.EventPublisher.Publish(ctx, event)
	if err != nil {
		uc.Log.Warn("appointmentUsecase.publish error publishing appointment event",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingEventTypeKey, eventType),
			zap.String(constvars.LoggingAppointmentIDKey, event.AppointmentID),
			zap.Error(err),
		)
	}
}
