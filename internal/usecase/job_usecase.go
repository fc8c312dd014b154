package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"bengkel_service/internal/domain/entities"
	"bengkel_service/internal/domain/numbering"
	"bengkel_service/internal/usecase/interfaces"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// SaveType selects whether SaveEstimate keeps a draft estimate or issues a work order.
type SaveType string

const (
	SaveTypeEstimate SaveType = "estimate"
	SaveTypeWO       SaveType = "wo"
)

func ParseSaveType(s string) (SaveType, bool) {
	switch SaveType(strings.ToLower(strings.TrimSpace(s))) {
	case SaveTypeEstimate:
		return SaveTypeEstimate, true
	case SaveTypeWO:
		return SaveTypeWO, true
	}
	return "", false
}

// CreateJobInput carries the minimal intake fields of a new job.
type CreateJobInput struct {
	PlateNumber    string `validate:"required,max=20"`
	CustomerName   string `validate:"required,max=120"`
	CustomerPhone  string `validate:"omitempty,max=30"`
	VehicleModel   string `validate:"omitempty,max=80"`
	VehicleColor   string `validate:"omitempty,max=40"`
	Insurance      string `validate:"omitempty,max=80"`
	ServiceAdvisor string `validate:"omitempty,max=120"`
	EntryDate      *time.Time
}

func (in CreateJobInput) normalized() CreateJobInput {
	in.PlateNumber = strings.ToUpper(strings.TrimSpace(in.PlateNumber))
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.CustomerPhone = strings.TrimSpace(in.CustomerPhone)
	in.VehicleModel = strings.TrimSpace(in.VehicleModel)
	in.VehicleColor = strings.TrimSpace(in.VehicleColor)
	in.Insurance = strings.TrimSpace(in.Insurance)
	in.ServiceAdvisor = strings.TrimSpace(in.ServiceAdvisor)
	return in
}

// SaveEstimateInput is the estimate editor payload.
type SaveEstimateInput struct {
	JobID      string
	Estimate   entities.EstimateData
	SaveType   SaveType
	ActingUser string
}

// CloseConfirmation carries the operator's answers to the close prompts.
type CloseConfirmation struct {
	// Confirmed acknowledges closing a job with posted cost.
	Confirmed bool
	// ZeroCostOverride acknowledges closing a job whose cost is all zero.
	ZeroCostOverride bool
}

// IJobUseCase drives a job from intake through estimate, work order, close and reopen.
type IJobUseCase interface {
	CreateJob(ctx context.Context, in CreateJobInput) (entities.Job, error)
	CreateAndOpenEstimate(ctx context.Context, in CreateJobInput) (entities.Job, error)
	GetJob(ctx context.Context, id string) (entities.Job, error)
	ListJobs(ctx context.Context) ([]entities.Job, error)
	UpdateJob(ctx context.Context, id string, patch entities.JobPatch) error
	SaveEstimate(ctx context.Context, in SaveEstimateInput) (string, error)
	CloseJob(ctx context.Context, id string, confirm CloseConfirmation) (entities.Job, error)
	ReopenJob(ctx context.Context, id string, role entities.Role) (entities.Job, error)
	DeleteJob(ctx context.Context, id string) error
}

type JobUseCase struct {
	repo          interfaces.IJobRepository
	claimer       interfaces.IDocumentNumberClaimer
	claimAttempts int
	metrics       interfaces.IOperationMetrics
	validate      *validator.Validate
	logger        *slog.Logger
	now           func() time.Time
}

var _ IJobUseCase = (*JobUseCase)(nil)

type JobUseCaseOption func(*JobUseCase)

// WithNumberClaimer reserves every generated number store-side before it is
// written, retrying with the next suffix up to attempts times.
func WithNumberClaimer(c interfaces.IDocumentNumberClaimer, attempts int) JobUseCaseOption {
	return func(u *JobUseCase) {
		u.claimer = c
		if attempts > 0 {
			u.claimAttempts = attempts
		}
	}
}

func WithMetrics(m interfaces.IOperationMetrics) JobUseCaseOption {
	return func(u *JobUseCase) {
		if m != nil {
			u.metrics = m
		}
	}
}

func WithLogger(l *slog.Logger) JobUseCaseOption {
	return func(u *JobUseCase) {
		if l != nil {
			u.logger = l
		}
	}
}

// WithClock overrides the wall clock; numbers are prefixed from its year and month.
func WithClock(now func() time.Time) JobUseCaseOption {
	return func(u *JobUseCase) {
		if now != nil {
			u.now = now
		}
	}
}

func NewJobUseCase(repo interfaces.IJobRepository, opts ...JobUseCaseOption) *JobUseCase {
	u := &JobUseCase{
		repo:          repo,
		claimAttempts: 5,
		metrics:       interfaces.NopMetrics{},
		validate:      validator.New(),
		logger:        slog.Default(),
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	u.logger = u.logger.With(slog.String("component", "job_usecase"))
	return u
}

func (u *JobUseCase) CreateJob(ctx context.Context, in CreateJobInput) (entities.Job, error) {
	job, err := u.createJob(ctx, in, entities.VehicleStatusBooking, entities.WorkStatusWaitingEstimate)
	u.observe("create_job", err)
	return job, err
}

// CreateAndOpenEstimate creates a job that skips the booking stage: it starts
// "In Progress" / "Not Started". The caller opens the estimate editor with
// the returned ID.
func (u *JobUseCase) CreateAndOpenEstimate(ctx context.Context, in CreateJobInput) (entities.Job, error) {
	job, err := u.createJob(ctx, in, entities.VehicleStatusInProgress, entities.WorkStatusNotStarted)
	u.observe("create_and_open_estimate", err)
	return job, err
}

func (u *JobUseCase) createJob(ctx context.Context, in CreateJobInput, vehicleStatus, workStatus string) (entities.Job, error) {
	in = in.normalized()
	if err := u.validate.Struct(in); err != nil {
		return entities.Job{}, toValidationError(err)
	}

	now := u.now()
	entry := startOfDay(now)
	if in.EntryDate != nil && !in.EntryDate.IsZero() {
		entry = *in.EntryDate
	}
	advisor := entities.ServiceAdvisor{}
	if in.ServiceAdvisor != "" {
		advisor = entities.AssignedAdvisor(in.ServiceAdvisor)
	}

	job := entities.Job{
		ID:             uuid.NewString(),
		PlateNumber:    in.PlateNumber,
		CustomerName:   in.CustomerName,
		CustomerPhone:  in.CustomerPhone,
		VehicleModel:   in.VehicleModel,
		VehicleColor:   in.VehicleColor,
		Insurance:      in.Insurance,
		VehicleStatus:  vehicleStatus,
		WorkStatus:     workStatus,
		ServiceAdvisor: advisor,
		Estimate: entities.EstimateData{
			LaborItems: []entities.LineItem{},
			PartItems:  []entities.LineItem{},
		},
		EntryDate: entry,
		CreatedAt: now,
	}

	created, err := u.repo.Create(ctx, job)
	if err != nil {
		return entities.Job{}, u.persistenceErr(ctx, "create_job", err)
	}
	u.logger.InfoContext(ctx, "job created", slog.String("job_id", created.ID), slog.String("plate_number", created.PlateNumber))
	return created, nil
}

func (u *JobUseCase) GetJob(ctx context.Context, id string) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, validationErr("id", ErrInvalidJobID)
	}
	job, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, u.persistenceErr(ctx, "get_job", err)
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return job, nil
}

// ListJobs returns every job not flagged as deleted.
func (u *JobUseCase) ListJobs(ctx context.Context) ([]entities.Job, error) {
	jobs, err := u.repo.List(ctx)
	if err != nil {
		return nil, u.persistenceErr(ctx, "list_jobs", err)
	}
	out := make([]entities.Job, 0, len(jobs))
	for _, j := range jobs {
		if !j.IsDeleted {
			out = append(out, j)
		}
	}
	return out, nil
}

// UpdateJob persists the set fields of patch. An empty patch is a no-op.
func (u *JobUseCase) UpdateJob(ctx context.Context, id string, patch entities.JobPatch) error {
	err := u.updateJob(ctx, id, patch)
	u.observe("update_job", err)
	return err
}

func (u *JobUseCase) updateJob(ctx context.Context, id string, patch entities.JobPatch) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return validationErr("id", ErrInvalidJobID)
	}
	if patch.IsClosed != nil || patch.ClosedAt != nil || patch.ClearClosedAt {
		return validationErr("is_closed", ErrLifecycleFieldInPatch)
	}
	if patch.IsEmpty() {
		return nil
	}
	if patch.Estimate != nil {
		est := patch.Estimate.Recalculate()
		patch.Estimate = &est
	}

	updated, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return u.updateErr(ctx, "update_job", err)
	}
	if updated.ID == "" {
		return ErrJobNotFound
	}
	return nil
}

// SaveEstimate persists the estimate, allocating the estimation number on
// first save and the WO number the first time a work order is issued. It
// returns the WO number when issuing a work order, else the estimation number.
func (u *JobUseCase) SaveEstimate(ctx context.Context, in SaveEstimateInput) (string, error) {
	number, err := u.saveEstimate(ctx, in)
	u.observe("save_estimate", err)
	return number, err
}

func (u *JobUseCase) saveEstimate(ctx context.Context, in SaveEstimateInput) (string, error) {
	jobID := strings.TrimSpace(in.JobID)
	if jobID == "" {
		return "", validationErr("job_id", ErrInvalidJobID)
	}
	if in.SaveType != SaveTypeEstimate && in.SaveType != SaveTypeWO {
		return "", validationErr("save_type", ErrInvalidSaveType)
	}

	job, err := u.repo.GetByID(ctx, jobID)
	if err != nil {
		return "", u.persistenceErr(ctx, "save_estimate", err)
	}
	if job.ID == "" {
		return "", ErrJobNotFound
	}

	est := in.Estimate.Recalculate()
	est.EstimationNumber = strings.TrimSpace(est.EstimationNumber)
	if job.Estimate.EstimationNumber != "" {
		est.EstimationNumber = job.Estimate.EstimationNumber
	}
	needEstimation := est.EstimationNumber == ""
	needWO := in.SaveType == SaveTypeWO && job.WONumber == ""

	var jobs []entities.Job
	if needEstimation || needWO {
		jobs, err = u.repo.List(ctx)
		if err != nil {
			return "", u.persistenceErr(ctx, "save_estimate", err)
		}
	}
	if needEstimation {
		est.EstimationNumber, err = u.allocate(ctx, numbering.FamilyEstimation, jobs, jobID)
		if err != nil {
			return "", err
		}
	}

	patch := entities.JobPatch{
		Estimate:   &est,
		LaborPrice: &est.LaborSubtotal,
		PartsPrice: &est.PartsSubtotal,
	}

	woNumber := job.WONumber
	if needWO {
		woNumber, err = u.allocate(ctx, numbering.FamilyWorkOrder, jobs, jobID)
		if err != nil {
			return "", err
		}
		vehicle, work := entities.VehicleStatusInProgress, entities.WorkStatusNotStarted
		patch.WONumber = &woNumber
		patch.VehicleStatus = &vehicle
		patch.WorkStatus = &work
	}

	if !job.ServiceAdvisor.IsAssigned() {
		name := strings.TrimSpace(est.Estimator)
		if name == "" {
			name = strings.TrimSpace(in.ActingUser)
		}
		if name != "" {
			advisor := entities.AssignedAdvisor(name)
			patch.ServiceAdvisor = &advisor
		}
	}

	updated, err := u.repo.Update(ctx, jobID, patch)
	if err != nil {
		return "", u.updateErr(ctx, "save_estimate", err)
	}
	if updated.ID == "" {
		return "", ErrJobNotFound
	}

	u.logger.InfoContext(ctx, "estimate saved",
		slog.String("job_id", jobID),
		slog.String("save_type", string(in.SaveType)),
		slog.String("estimation_number", est.EstimationNumber),
		slog.String("wo_number", woNumber),
	)
	if in.SaveType == SaveTypeWO {
		return woNumber, nil
	}
	return est.EstimationNumber, nil
}

// allocate computes the next number of family from the loaded jobs. With a
// claimer configured the number is reserved store-side and a taken number is
// skipped; without one the computed number is returned as is.
func (u *JobUseCase) allocate(ctx context.Context, family string, jobs []entities.Job, jobID string) (string, error) {
	existing := numbering.Existing(family, jobs)
	now := u.now()
	for attempt := 1; ; attempt++ {
		number := numbering.NextAt(family, now, existing)
		if u.claimer == nil {
			return number, nil
		}
		ok, err := u.claimer.Claim(ctx, number, jobID)
		if err != nil {
			return "", u.persistenceErr(ctx, "claim_number", err)
		}
		if ok {
			return number, nil
		}
		u.metrics.ObserveNumberConflict(family)
		u.logger.WarnContext(ctx, "document number already claimed",
			slog.String("number", number), slog.Int("attempt", attempt))
		if attempt >= u.claimAttempts {
			return "", ErrNumberAllocationExhausted
		}
		existing = append(existing, number)
	}
}

// CloseJob finalizes the job. Posted cost needs confirm.Confirmed; an all
// zero cost needs confirm.ZeroCostOverride.
func (u *JobUseCase) CloseJob(ctx context.Context, id string, confirm CloseConfirmation) (entities.Job, error) {
	job, err := u.closeJob(ctx, id, confirm)
	u.observe("close_job", err)
	return job, err
}

func (u *JobUseCase) closeJob(ctx context.Context, id string, confirm CloseConfirmation) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, validationErr("id", ErrInvalidJobID)
	}
	job, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, u.persistenceErr(ctx, "close_job", err)
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}

	if job.HasPostedCost() {
		if !confirm.Confirmed {
			return entities.Job{}, validationErr("confirmed", ErrCloseNotConfirmed)
		}
	} else if !confirm.ZeroCostOverride {
		return entities.Job{}, validationErr("zero_cost_override", ErrZeroCostCloseNotAcknowledged)
	}

	closed, closedAt := true, u.now()
	vehicle, work := entities.VehicleStatusFinished, entities.WorkStatusFinished
	updated, err := u.repo.Update(ctx, id, entities.JobPatch{
		IsClosed:      &closed,
		ClosedAt:      &closedAt,
		VehicleStatus: &vehicle,
		WorkStatus:    &work,
	})
	if err != nil {
		return entities.Job{}, u.updateErr(ctx, "close_job", err)
	}
	if updated.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	u.logger.InfoContext(ctx, "job closed", slog.String("job_id", id), slog.Bool("zero_cost", !job.HasPostedCost()))
	return updated, nil
}

// ReopenJob returns a closed job to active work. Only owner and manager may
// reopen; the check runs before any store access.
func (u *JobUseCase) ReopenJob(ctx context.Context, id string, role entities.Role) (entities.Job, error) {
	job, err := u.reopenJob(ctx, id, role)
	u.observe("reopen_job", err)
	return job, err
}

func (u *JobUseCase) reopenJob(ctx context.Context, id string, role entities.Role) (entities.Job, error) {
	if !role.CanReopen() {
		return entities.Job{}, &AuthorizationError{Operation: "reopen job", Role: role}
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, validationErr("id", ErrInvalidJobID)
	}

	closed := false
	vehicle, work := entities.VehicleStatusInProgress, entities.WorkStatusFinishing
	updated, err := u.repo.Update(ctx, id, entities.JobPatch{
		IsClosed:      &closed,
		ClearClosedAt: true,
		VehicleStatus: &vehicle,
		WorkStatus:    &work,
	})
	if err != nil {
		return entities.Job{}, u.updateErr(ctx, "reopen_job", err)
	}
	if updated.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	u.logger.InfoContext(ctx, "job reopened", slog.String("job_id", id), slog.String("role", string(role)))
	return updated, nil
}

func (u *JobUseCase) DeleteJob(ctx context.Context, id string) error {
	err := u.deleteJob(ctx, id)
	u.observe("delete_job", err)
	return err
}

func (u *JobUseCase) deleteJob(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return validationErr("id", ErrInvalidJobID)
	}
	job, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return u.persistenceErr(ctx, "delete_job", err)
	}
	if job.ID == "" {
		return ErrJobNotFound
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		return u.persistenceErr(ctx, "delete_job", err)
	}
	u.logger.InfoContext(ctx, "job deleted", slog.String("job_id", id))
	return nil
}

func (u *JobUseCase) updateErr(ctx context.Context, op string, err error) error {
	if errors.Is(err, interfaces.ErrImmutableNumber) {
		return validationErr("number", ErrDocumentNumberConflict)
	}
	return u.persistenceErr(ctx, op, err)
}

func (u *JobUseCase) persistenceErr(ctx context.Context, op string, err error) error {
	u.logger.ErrorContext(ctx, "store failure", slog.String("op", op), slog.Any("err", err))
	return &PersistenceError{Op: op, Err: err}
}

func (u *JobUseCase) observe(op string, err error) {
	outcome := "ok"
	var (
		verr *ValidationError
		aerr *AuthorizationError
	)
	switch {
	case err == nil:
	case errors.As(err, &verr):
		outcome = "invalid"
	case errors.As(err, &aerr):
		outcome = "forbidden"
	case errors.Is(err, ErrJobNotFound):
		outcome = "not_found"
	default:
		outcome = "error"
	}
	u.metrics.ObserveOperation(op, outcome)
}

func toValidationError(err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		return &ValidationError{
			Field: toSnake(fe.Field()),
			Err:   errors.New(fe.Tag()),
		}
	}
	return &ValidationError{Err: err}
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
