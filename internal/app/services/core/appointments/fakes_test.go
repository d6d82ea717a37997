package appointments

import (
	"context"
	"doctor-appointment-service/internal/app/models"
	"doctor-appointment-service/internal/pkg/dto/responses"
	"doctor-appointment-service/internal/pkg/exceptions"
	"errors"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memoryAppointmentRepository mirrors the partial unique index on booked
// (doctor_id, date, time_slot) triples.
type memoryAppointmentRepository struct {
	mu           sync.Mutex
	appointments map[primitive.ObjectID]models.Appointment
	doctors      map[primitive.ObjectID]models.Doctor
	updateCalls  int
}

func newMemoryAppointmentRepository(doctors ...models.Doctor) *memoryAppointmentRepository {
	repo := &memoryAppointmentRepository{
		appointments: make(map[primitive.ObjectID]models.Appointment),
		doctors:      make(map[primitive.ObjectID]models.Doctor),
	}
	for _, doctor := range doctors {
		repo.doctors[doctor.ID] = doctor
	}
	return repo
}

func (r *memoryAppointmentRepository) EnsureIndexes(ctx context.Context) error {
	return nil
}

func (r *memoryAppointmentRepository) Insert(ctx context.Context, appointment *models.Appointment) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if appointment.Status == models.AppointmentStatusBooked && r.bookedLocked(appointment.DoctorID, appointment.Date, appointment.TimeSlot, primitive.NilObjectID) {
		return "", exceptions.ErrMongoDBDuplicateBookedSlot(nil)
	}
	appointment.ID = primitive.NewObjectID()
	r.appointments[appointment.ID] = *appointment
	return appointment.ID.Hex(), nil
}

func (r *memoryAppointmentRepository) FindByIDAndUser(ctx context.Context, appointmentID, userID string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	appointment, ok := r.appointments[objectID]
	if !ok || appointment.UserID != userID {
		return nil, nil
	}
	return &appointment, nil
}

func (r *memoryAppointmentRepository) FindDetailByIDAndUser(ctx context.Context, appointmentID, userID string) (*models.AppointmentDetail, error) {
	appointment, err := r.FindByIDAndUser(ctx, appointmentID, userID)
	if err != nil || appointment == nil {
		return nil, err
	}
	detail := r.detail(*appointment)
	return &detail, nil
}

func (r *memoryAppointmentRepository) ListDetailsByUser(ctx context.Context, userID string) ([]models.AppointmentDetail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	details := make([]models.AppointmentDetail, 0)
	for _, appointment := range r.appointments {
		if appointment.UserID == userID {
			details = append(details, r.detailLocked(appointment))
		}
	}
	sort.Slice(details, func(i, j int) bool {
		if details[i].Date != details[j].Date {
			return details[i].Date < details[j].Date
		}
		if details[i].TimeSlot != details[j].TimeSlot {
			return details[i].TimeSlot < details[j].TimeSlot
		}
		return details[i].ID.Hex() < details[j].ID.Hex()
	})
	return details, nil
}

func (r *memoryAppointmentRepository) ExistsBooked(ctx context.Context, doctorID, date, timeSlot, excludeAppointmentID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doctorObjectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}
	exclude := primitive.NilObjectID
	if excludeAppointmentID != "" {
		exclude, err = primitive.ObjectIDFromHex(excludeAppointmentID)
		if err != nil {
			return false, exceptions.ErrMongoDBNotObjectID(err)
		}
	}
	return r.bookedLocked(doctorObjectID, date, timeSlot, exclude), nil
}

func (r *memoryAppointmentRepository) FindBookedSlots(ctx context.Context, doctorID, date string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	slots := make([]string, 0)
	for _, appointment := range r.appointments {
		if appointment.DoctorID.Hex() == doctorID && appointment.Date == date && appointment.Status == models.AppointmentStatusBooked {
			slots = append(slots, appointment.TimeSlot)
		}
	}
	return slots, nil
}

func (r *memoryAppointmentRepository) UpdateIfStatus(ctx context.Context, appointmentID, userID string, expected models.AppointmentStatus, update models.AppointmentUpdate) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updateCalls++

	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}
	appointment, ok := r.appointments[objectID]
	if !ok || appointment.UserID != userID || appointment.Status != expected {
		return false, nil
	}

	next := appointment
	if update.Date != nil {
		next.Date = *update.Date
	}
	if update.TimeSlot != nil {
		next.TimeSlot = *update.TimeSlot
	}
	if update.Status != nil {
		next.Status = *update.Status
	}
	next.UpdatedAt = update.UpdatedAt

	if next.Status == models.AppointmentStatusBooked && r.bookedLocked(next.DoctorID, next.Date, next.TimeSlot, next.ID) {
		return false, exceptions.ErrMongoDBDuplicateBookedSlot(nil)
	}
	r.appointments[objectID] = next
	return true, nil
}

// put stores an appointment as-is, bypassing the uniqueness check.
func (r *memoryAppointmentRepository) put(appointment models.Appointment) models.Appointment {
	r.mu.Lock()
	defer r.mu.Unlock()

	if appointment.ID.IsZero() {
		appointment.ID = primitive.NewObjectID()
	}
	r.appointments[appointment.ID] = appointment
	return appointment
}

func (r *memoryAppointmentRepository) get(appointmentID string) models.Appointment {
	r.mu.Lock()
	defer r.mu.Unlock()

	objectID, _ := primitive.ObjectIDFromHex(appointmentID)
	return r.appointments[objectID]
}

func (r *memoryAppointmentRepository) countBooked(doctorID primitive.ObjectID, date, timeSlot string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, appointment := range r.appointments {
		if appointment.DoctorID == doctorID && appointment.Date == date && appointment.TimeSlot == timeSlot && appointment.Status == models.AppointmentStatusBooked {
			count++
		}
	}
	return count
}

func (r *memoryAppointmentRepository) bookedLocked(doctorID primitive.ObjectID, date, timeSlot string, exclude primitive.ObjectID) bool {
	for id, appointment := range r.appointments {
		if id == exclude {
			continue
		}
		if appointment.DoctorID == doctorID && appointment.Date == date && appointment.TimeSlot == timeSlot && appointment.Status == models.AppointmentStatusBooked {
			return true
		}
	}
	return false
}

func (r *memoryAppointmentRepository) detail(appointment models.Appointment) models.AppointmentDetail {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.detailLocked(appointment)
}

func (r *memoryAppointmentRepository) detailLocked(appointment models.Appointment) models.AppointmentDetail {
	detail := models.AppointmentDetail{Appointment: appointment}
	if doctor, ok := r.doctors[appointment.DoctorID]; ok {
		detail.DoctorName = doctor.Name
		detail.DoctorSpecialty = doctor.Specialty
	}
	return detail
}

type stubDoctorUsecase struct {
	doctors map[string]models.Doctor
	err     error
}

func newStubDoctorUsecase(doctors ...models.Doctor) *stubDoctorUsecase {
	stub := &stubDoctorUsecase{doctors: make(map[string]models.Doctor)}
	for _, doctor := range doctors {
		stub.doctors[doctor.ID.Hex()] = doctor
	}
	return stub
}

func (s *stubDoctorUsecase) FindAll(ctx context.Context) ([]responses.Doctor, error) {
	result := make([]responses.Doctor, 0, len(s.doctors))
	for _, doctor := range s.doctors {
		result = append(result, doctor.ConvertIntoResponse())
	}
	return result, nil
}

func (s *stubDoctorUsecase) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	if s.err != nil {
		return nil, s.err
	}
	if !primitive.IsValidObjectID(doctorID) {
		return nil, exceptions.ErrInvalidDoctorID(nil)
	}
	doctor, ok := s.doctors[doctorID]
	if !ok {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}
	return &doctor, nil
}

func (s *stubDoctorUsecase) SeedDoctors(ctx context.Context, doctors []models.Doctor) (int, error) {
	return 0, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []models.AppointmentEvent
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, event models.AppointmentEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) Close() error {
	return nil
}

func (p *recordingPublisher) eventTypes() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]string, len(p.events))
	for i, event := range p.events {
		types[i] = event.Type
	}
	return types
}

// alwaysAvailableChecker answers yes without looking, so tests can reach the storage constraint.
type alwaysAvailableChecker struct {
	calls int
}

func (c *alwaysAvailableChecker) IsAvailable(ctx context.Context, doctorID, date, timeSlot, excludeAppointmentID string) (bool, error) {
	c.calls++
	return true, nil
}

func (c *alwaysAvailableChecker) FreeSlots(ctx context.Context, doctor *models.Doctor, date string) ([]string, error) {
	return doctor.AvailableSlots, nil
}

var errStorageDown = errors.New("storage down")
