package repositories

import (
	"errors"
	"testing"
	"time"

	"parlorhub/models"
)

func TestAppointmentSlotConflict(t *testing.T) {
	repo := NewAppointmentRepository(newTestDB(t))

	first := models.Appointment{
		ClientName:      "Ayesha",
		Phone:           "+919876543210",
		ServiceTitle:    "Bridal Makeup",
		AppointmentDate: "2024-05-01",
		AppointmentTime: strPtr("10:00"),
	}
	if err := repo.Create(&first); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	second := models.Appointment{
		ClientName:      "Meera",
		Phone:           "+919876500000",
		ServiceTitle:    "Party Makeup",
		AppointmentDate: "2024-05-01",
		AppointmentTime: strPtr("10:00"),
	}
	err := repo.Create(&second)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("second booking for the same slot: want ErrConflict, got %v", err)
	}

	appointments, err := repo.ListForDate("2024-05-01")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(appointments) != 1 {
		t.Fatalf("slot should hold exactly one booking, got %d", len(appointments))
	}
	if appointments[0].ClientName != "Ayesha" {
		t.Fatalf("first booking should remain, got %q", appointments[0].ClientName)
	}
}

func TestAppointmentDifferentTimesSameDate(t *testing.T) {
	repo := NewAppointmentRepository(newTestDB(t))

	a := models.Appointment{
		ClientName: "A", Phone: "+911111111111", ServiceTitle: "Hair Styling",
		AppointmentDate: "2024-05-01", AppointmentTime: strPtr("10:00"),
	}
	b := models.Appointment{
		ClientName: "B", Phone: "+912222222222", ServiceTitle: "Hair Styling",
		AppointmentDate: "2024-05-01", AppointmentTime: strPtr("11:00"),
	}

	if err := repo.Create(&a); err != nil {
		t.Fatalf("create a: %v", err)
	}
	if err := repo.Create(&b); err != nil {
		t.Fatalf("different time on same date should not conflict: %v", err)
	}
}

func TestAppointmentDeleteIdempotent(t *testing.T) {
	repo := NewAppointmentRepository(newTestDB(t))

	appointment := models.Appointment{
		ClientName: "Ayesha", Phone: "+919876543210", ServiceTitle: "Skin Treatment",
		AppointmentDate: "2024-06-10", AppointmentTime: strPtr("14:00"),
	}
	if err := repo.Create(&appointment); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.Delete(appointment.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := repo.Delete(appointment.ID); err != nil {
		t.Fatalf("repeated delete of absent id must not fail: %v", err)
	}

	appointments, err := repo.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(appointments) != 0 {
		t.Fatalf("list should be empty after delete, got %d", len(appointments))
	}
}

func TestAppointmentSlotFreedByDelete(t *testing.T) {
	repo := NewAppointmentRepository(newTestDB(t))

	first := models.Appointment{
		ClientName: "Ayesha", Phone: "+919876543210", ServiceTitle: "Bridal Makeup",
		AppointmentDate: "2024-09-01", AppointmentTime: strPtr("10:00"),
	}
	if err := repo.Create(&first); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Delete(first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	rebooked := models.Appointment{
		ClientName: "Meera", Phone: "+919876500000", ServiceTitle: "Party Makeup",
		AppointmentDate: "2024-09-01", AppointmentTime: strPtr("10:00"),
	}
	if err := repo.Create(&rebooked); err != nil {
		t.Fatalf("deleted booking must free its slot: %v", err)
	}
}

func TestAppointmentListNewestFirst(t *testing.T) {
	repo := NewAppointmentRepository(newTestDB(t))

	older := models.Appointment{
		ClientName: "Old", Phone: "+911111111111", ServiceTitle: "Hair Styling",
		AppointmentDate: "2024-07-01", AppointmentTime: strPtr("09:00"),
	}
	older.CreatedAt = time.Now().Add(-time.Hour)
	newer := models.Appointment{
		ClientName: "New", Phone: "+912222222222", ServiceTitle: "Hair Styling",
		AppointmentDate: "2024-07-02", AppointmentTime: strPtr("09:00"),
	}
	newer.CreatedAt = time.Now()

	if err := repo.Create(&older); err != nil {
		t.Fatalf("create older: %v", err)
	}
	if err := repo.Create(&newer); err != nil {
		t.Fatalf("create newer: %v", err)
	}

	appointments, err := repo.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(appointments) != 2 {
		t.Fatalf("want 2 appointments, got %d", len(appointments))
	}
	if appointments[0].ClientName != "New" {
		t.Fatalf("newest booking should come first, got %q", appointments[0].ClientName)
	}
}

func TestAppointmentUpdateStatus(t *testing.T) {
	repo := NewAppointmentRepository(newTestDB(t))

	appointment := models.Appointment{
		ClientName: "Ayesha", Phone: "+919876543210", ServiceTitle: "Bridal Makeup",
		AppointmentDate: "2024-08-01", AppointmentTime: strPtr("12:00"),
	}
	if err := repo.Create(&appointment); err != nil {
		t.Fatalf("create: %v", err)
	}
	if appointment.Status != models.AppointmentPending {
		t.Fatalf("new booking should be pending, got %q", appointment.Status)
	}

	confirmed := models.AppointmentConfirmed
	if err := repo.Update(appointment.ID, AppointmentPatch{Status: &confirmed}); err != nil {
		t.Fatalf("update: %v", err)
	}

	appointments, _ := repo.List()
	if appointments[0].Status != models.AppointmentConfirmed {
		t.Fatalf("list should reflect the update, got %q", appointments[0].Status)
	}
}
