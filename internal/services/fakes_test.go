package services

import (
	"context"
	"errors"
	"strconv"
	"time"

	"memberorg/internal/domain"
)

// fakeRegistrationRepo implements domain.RegistrationRepository for tests.
type fakeRegistrationRepo struct {
	regs       []*domain.Registration
	createErr  error
	dupCount   int
	dupErr     error
	deletedFor []domain.EventType
}

func (f *fakeRegistrationRepo) Create(ctx context.Context, reg *domain.Registration) error {
	if f.createErr != nil {
		return f.createErr
	}
	reg.ID = "reg-" + strconv.Itoa(len(f.regs)+1)
	f.regs = append(f.regs, reg)
	return nil
}

func (f *fakeRegistrationRepo) ListByEventType(ctx context.Context, eventType domain.EventType) ([]*domain.Registration, error) {
	out := []*domain.Registration{}
	for _, r := range f.regs {
		if r.EventType == eventType {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRegistrationRepo) ListPage(ctx context.Context, eventType domain.EventType, p domain.PaginationParams) ([]*domain.Registration, int, error) {
	regs, _ := f.ListByEventType(ctx, eventType)
	return regs, len(regs), nil
}

func (f *fakeRegistrationRepo) CountByEmailAndSettings(ctx context.Context, eventType domain.EventType, email, settingsID string) (int, error) {
	return f.dupCount, f.dupErr
}

func (f *fakeRegistrationRepo) DeleteByEventType(ctx context.Context, eventType domain.EventType) error {
	f.deletedFor = append(f.deletedFor, eventType)
	kept := f.regs[:0]
	for _, r := range f.regs {
		if r.EventType != eventType {
			kept = append(kept, r)
		}
	}
	f.regs = kept
	return nil
}

func (f *fakeRegistrationRepo) Delete(ctx context.Context, id string) error {
	for i, r := range f.regs {
		if r.ID == id {
			f.regs = append(f.regs[:i], f.regs[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// fakeAttendeeRepo implements domain.AttendeeRepository for tests.
type fakeAttendeeRepo struct {
	attendees  []*domain.Attendee
	failAfter  int // fail the Nth create (1-based); 0 disables
	creates    int
	deletedFor []domain.EventType
	byEvent    map[domain.EventType][]*domain.Attendee
}

func (f *fakeAttendeeRepo) Create(ctx context.Context, a *domain.Attendee) error {
	f.creates++
	if f.failAfter > 0 && f.creates >= f.failAfter {
		return errors.New("attendee insert failed")
	}
	a.ID = "att-" + strconv.Itoa(len(f.attendees)+1)
	f.attendees = append(f.attendees, a)
	return nil
}

func (f *fakeAttendeeRepo) ListByRegistrationID(ctx context.Context, registrationID string) ([]*domain.Attendee, error) {
	out := []*domain.Attendee{}
	for _, a := range f.attendees {
		if a.RegistrationID == registrationID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAttendeeRepo) ListByEventType(ctx context.Context, eventType domain.EventType) ([]*domain.Attendee, error) {
	if f.byEvent != nil {
		return f.byEvent[eventType], nil
	}
	return f.attendees, nil
}

func (f *fakeAttendeeRepo) DeleteByEventType(ctx context.Context, eventType domain.EventType) error {
	f.deletedFor = append(f.deletedFor, eventType)
	return nil
}

// fakeNominationRepo implements domain.NominationRepository for tests.
type fakeNominationRepo struct {
	noms       []*domain.Nomination
	dupCount   int
	statusByID map[string]domain.SubmissionStatus
	updateErr  error
	deletedAll bool
}

func (f *fakeNominationRepo) Create(ctx context.Context, n *domain.Nomination) error {
	n.ID = "nom-" + strconv.Itoa(len(f.noms)+1)
	f.noms = append(f.noms, n)
	return nil
}

func (f *fakeNominationRepo) List(ctx context.Context, p domain.PaginationParams) ([]*domain.Nomination, int, error) {
	return f.noms, len(f.noms), nil
}

func (f *fakeNominationRepo) ListAll(ctx context.Context) ([]*domain.Nomination, error) {
	return f.noms, nil
}

func (f *fakeNominationRepo) CountByNomineeAndDistrict(ctx context.Context, nomineeName, district string) (int, error) {
	return f.dupCount, nil
}

func (f *fakeNominationRepo) UpdateStatus(ctx context.Context, id string, status domain.SubmissionStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if f.statusByID == nil {
		f.statusByID = map[string]domain.SubmissionStatus{}
	}
	f.statusByID[id] = status
	return nil
}

func (f *fakeNominationRepo) DeleteAll(ctx context.Context) error {
	f.deletedAll = true
	f.noms = nil
	return nil
}

// fakeMembershipRepo implements domain.MembershipRepository for tests.
type fakeMembershipRepo struct {
	apps     []*domain.MembershipApplication
	dupCount int
}

func (f *fakeMembershipRepo) Create(ctx context.Context, m *domain.MembershipApplication) error {
	m.ID = "app-" + strconv.Itoa(len(f.apps)+1)
	f.apps = append(f.apps, m)
	return nil
}

func (f *fakeMembershipRepo) List(ctx context.Context, p domain.PaginationParams) ([]*domain.MembershipApplication, int, error) {
	return f.apps, len(f.apps), nil
}

func (f *fakeMembershipRepo) CountPendingByEmail(ctx context.Context, email string) (int, error) {
	return f.dupCount, nil
}

func (f *fakeMembershipRepo) UpdateStatus(ctx context.Context, id string, status domain.SubmissionStatus) error {
	return nil
}

// fakeSettingsRepo implements domain.SettingsRepository for tests.
type fakeSettingsRepo struct {
	active         map[domain.EventType]*domain.SettingsPeriod
	created        []*domain.SettingsPeriod
	updated        []*domain.SettingsPeriod
	deactivatedFor []domain.EventType
	updateErr      error
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{active: map[domain.EventType]*domain.SettingsPeriod{}}
}

func (f *fakeSettingsRepo) Create(ctx context.Context, s *domain.SettingsPeriod) error {
	s.ID = "settings-" + strconv.Itoa(len(f.created)+1)
	f.created = append(f.created, s)
	if s.IsActive {
		f.active[s.EventType] = s
	}
	return nil
}

func (f *fakeSettingsRepo) GetActive(ctx context.Context, eventType domain.EventType) (*domain.SettingsPeriod, error) {
	if s, ok := f.active[eventType]; ok {
		return s, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeSettingsRepo) ListByEventType(ctx context.Context, eventType domain.EventType) ([]*domain.SettingsPeriod, error) {
	out := []*domain.SettingsPeriod{}
	for _, s := range f.created {
		if s.EventType == eventType {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSettingsRepo) DeactivateAll(ctx context.Context, eventType domain.EventType) error {
	f.deactivatedFor = append(f.deactivatedFor, eventType)
	delete(f.active, eventType)
	return nil
}

func (f *fakeSettingsRepo) Update(ctx context.Context, s *domain.SettingsPeriod) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = append(f.updated, s)
	if s.IsActive {
		f.active[s.EventType] = s
	} else if cur, ok := f.active[s.EventType]; ok && cur.ID == s.ID {
		delete(f.active, s.EventType)
	}
	return nil
}

func (f *fakeSettingsRepo) Delete(ctx context.Context, id string) error {
	return nil
}

// fakeArchiveRepo implements domain.ArchiveRepository for tests.
type fakeArchiveRepo struct {
	countInYear    int
	countExcluding int
	regs           []*domain.ArchivedRegistration
	attendees      []*domain.ArchivedAttendee
	noms           []*domain.ArchivedNomination
	batches        []*domain.ArchiveBatch
	createRegErr   error
}

func (f *fakeArchiveRepo) CountInYear(ctx context.Context, eventType domain.EventType, year int) (int, error) {
	return f.countInYear, nil
}

func (f *fakeArchiveRepo) CountInYearExcluding(ctx context.Context, eventType domain.EventType, year int, excludeArchiveID string) (int, error) {
	return f.countExcluding, nil
}

func (f *fakeArchiveRepo) CreateRegistration(ctx context.Context, a *domain.ArchivedRegistration) error {
	if f.createRegErr != nil {
		return f.createRegErr
	}
	a.ID = "arch-reg-" + strconv.Itoa(len(f.regs)+1)
	f.regs = append(f.regs, a)
	return nil
}

func (f *fakeArchiveRepo) CreateAttendee(ctx context.Context, a *domain.ArchivedAttendee) error {
	a.ID = "arch-att-" + strconv.Itoa(len(f.attendees)+1)
	f.attendees = append(f.attendees, a)
	return nil
}

func (f *fakeArchiveRepo) CreateNomination(ctx context.Context, a *domain.ArchivedNomination) error {
	a.ID = "arch-nom-" + strconv.Itoa(len(f.noms)+1)
	f.noms = append(f.noms, a)
	return nil
}

func (f *fakeArchiveRepo) ListRegistrationsByArchiveID(ctx context.Context, archiveID string) ([]*domain.ArchivedRegistration, error) {
	return f.regs, nil
}

func (f *fakeArchiveRepo) ListAttendeesByArchiveID(ctx context.Context, archiveID string) ([]*domain.ArchivedAttendee, error) {
	return f.attendees, nil
}

func (f *fakeArchiveRepo) ListNominationsByArchiveID(ctx context.Context, archiveID string) ([]*domain.ArchivedNomination, error) {
	return f.noms, nil
}

func (f *fakeArchiveRepo) ListBatches(ctx context.Context, eventType domain.EventType) ([]*domain.ArchiveBatch, error) {
	return f.batches, nil
}

// fakeLimiter implements domain.RateLimiter for tests.
type fakeLimiter struct {
	err  error
	keys []string
}

func (f *fakeLimiter) CheckAndRecord(ctx context.Context, key string) error {
	f.keys = append(f.keys, key)
	return f.err
}

// fakeAuditLogger implements domain.AuditLogger for tests.
type auditRecord struct {
	action  string
	actorID string
	outcome string
	details string
}

type fakeAuditLogger struct {
	records []auditRecord
}

func (f *fakeAuditLogger) Record(ctx context.Context, action, actorID, outcome, details string) {
	f.records = append(f.records, auditRecord{action, actorID, outcome, details})
}

func (f *fakeAuditLogger) last() auditRecord {
	if len(f.records) == 0 {
		return auditRecord{}
	}
	return f.records[len(f.records)-1]
}

// fakeRateLimitRepo implements domain.RateLimitRepository for tests.
type fakeRateLimitRepo struct {
	counters map[string]*domain.RateLimitCounter
	getErr   error
}

func newFakeRateLimitRepo() *fakeRateLimitRepo {
	return &fakeRateLimitRepo{counters: map[string]*domain.RateLimitCounter{}}
}

func (f *fakeRateLimitRepo) Get(ctx context.Context, key string) (*domain.RateLimitCounter, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if c, ok := f.counters[key]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRateLimitRepo) Upsert(ctx context.Context, c *domain.RateLimitCounter) error {
	cp := *c
	f.counters[c.Key] = &cp
	return nil
}

// fakeUserRepo implements domain.UserRepository for tests.
type fakeUserRepo struct {
	byID       map[string]*domain.User
	byEmail    map[string]*domain.User
	adminCount int
	createErr  error
	deleteErr  error
	creates    int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    map[string]*domain.User{},
		byEmail: map[string]*domain.User{},
	}
}

func (f *fakeUserRepo) add(u *domain.User) {
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	f.creates++
	if f.createErr != nil {
		return f.createErr
	}
	if _, taken := f.byEmail[u.Email]; taken {
		return domain.ErrDuplicateEmail
	}
	// The real repository always generates the id, even if the caller set one.
	u.ID = "user-" + strconv.Itoa(f.creates)
	f.add(u)
	return nil
}

func (f *fakeUserRepo) Restore(ctx context.Context, u *domain.User) error {
	if _, taken := f.byEmail[u.Email]; taken {
		return domain.ErrDuplicateEmail
	}
	f.add(u)
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if u, ok := f.byEmail[email]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if u, ok := f.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) List(ctx context.Context) ([]*domain.User, error) {
	out := []*domain.User{}
	for _, u := range f.byID {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) CountByRole(ctx context.Context, role string) (int, error) {
	if f.adminCount > 0 && role == domain.RoleAdmin {
		return f.adminCount, nil
	}
	count := 0
	for _, u := range f.byID {
		if u.Role == role {
			count++
		}
	}
	return count, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u *domain.User) error {
	if _, ok := f.byID[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	f.add(u)
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	u, ok := f.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	delete(f.byID, id)
	delete(f.byEmail, u.Email)
	return nil
}

// fakeIdentityService implements domain.IdentityService for tests.
type fakeIdentityService struct {
	createErr error
	deleteErr error
	created   []string
	deleted   []string
}

func (f *fakeIdentityService) CreateIdentity(ctx context.Context, userID, email string) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, userID)
	return nil
}

func (f *fakeIdentityService) DeleteIdentity(ctx context.Context, userID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, userID)
	return nil
}

// fakePasswordHasher implements domain.PasswordHasher for tests.
type fakePasswordHasher struct {
	compareErr error
}

func (f *fakePasswordHasher) GenerateSalt() (string, error) { return "salt", nil }
func (f *fakePasswordHasher) Hash(salt, password string) (string, error) {
	return "hash-" + password, nil
}
func (f *fakePasswordHasher) Compare(hash, salt, password string) error {
	if f.compareErr != nil {
		return f.compareErr
	}
	if hash != "hash-"+password {
		return errors.New("mismatch")
	}
	return nil
}

// fakeTokenIssuer implements domain.TokenIssuer for tests.
type fakeTokenIssuer struct {
	err error
}

func (f *fakeTokenIssuer) Issue(userID, email string, roles []string, expiry time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "token-" + userID, nil
}

// fakeEmailService implements domain.EmailService for tests.
type fakeEmailService struct {
	sent []*domain.SubmissionConfirmationData
	err  error
}

func (f *fakeEmailService) SendSubmissionConfirmation(ctx context.Context, data *domain.SubmissionConfirmationData) error {
	f.sent = append(f.sent, data)
	return f.err
}

// openSettings returns a settings period whose window contains the present.
func openSettings(eventType domain.EventType) *domain.SettingsPeriod {
	now := time.Now()
	return &domain.SettingsPeriod{
		ID:        "settings-open",
		EventType: eventType,
		Name:      "Current Period",
		StartDate: now.AddDate(0, -1, 0),
		EndDate:   now.AddDate(0, 1, 0),
		Fee:       150,
		IsActive:  true,
	}
}
