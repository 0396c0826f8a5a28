package service

import (
	"sort"
	"sync"

	"go-banksampah/internal/model"
	"go-banksampah/internal/repository"
	"go-banksampah/pkg/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var testLog = logger.Discard()

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*model.User
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[uuid.UUID]*model.User{}}
	for _, u := range users {
		if u.ID == uuid.Nil {
			u.ID = uuid.New()
		}
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindAll() ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) Create(user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Update(id uuid.UUID, fields map[string]interface{}) (*model.User, error) {
	r.mu.Lock()
	u, ok := r.users[id]
	if !ok {
		r.mu.Unlock()
		return nil, gorm.ErrRecordNotFound
	}
	for k, v := range fields {
		switch k {
		case "name":
			u.Name = v.(string)
		case "email":
			u.Email = v.(string)
		case "password":
			u.Password = v.(string)
		case "role":
			u.Role = v.(string)
		case "point":
			u.Point = v.(int64)
		case "age":
			age := v.(int)
			u.Age = &age
		}
	}
	r.mu.Unlock()
	return r.FindByID(id)
}

func (r *fakeUserRepo) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) point(id uuid.UUID) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.users[id].Point
}

// adjust mirrors repository.adjustPoint; callers hold no lock.
func (r *fakeUserRepo) adjust(id uuid.UUID, delta int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return repository.ErrOwnerNotFound
	}
	u.Point += delta
	return nil
}

type fakeSampahRepo struct {
	items map[uuid.UUID]*model.Sampah
}

func (r *fakeSampahRepo) Create(s *model.Sampah) error {
	s.ID = uuid.New()
	r.items[s.ID] = s
	return nil
}

func (r *fakeSampahRepo) FindAll(bankSampahID *uuid.UUID) ([]model.Sampah, error) {
	var out []model.Sampah
	for _, s := range r.items {
		if bankSampahID == nil || s.BankSampahID == *bankSampahID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSampahRepo) FindByID(id uuid.UUID) (*model.Sampah, error) {
	s, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *fakeSampahRepo) Update(id uuid.UUID, fields map[string]interface{}) (*model.Sampah, error) {
	s, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if v, ok := fields["category"]; ok {
		s.Category = v.(string)
	}
	if v, ok := fields["price"]; ok {
		s.Price = v.(decimal.Decimal)
	}
	return s, nil
}

func (r *fakeSampahRepo) Delete(id uuid.UUID) error {
	if _, ok := r.items[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.items, id)
	return nil
}

type fakeBarangRepo struct {
	items map[uuid.UUID]*model.Barang
}

func (r *fakeBarangRepo) Create(b *model.Barang) error {
	b.ID = uuid.New()
	r.items[b.ID] = b
	return nil
}

func (r *fakeBarangRepo) FindAll(tokoID *uuid.UUID) ([]model.Barang, error) {
	var out []model.Barang
	for _, b := range r.items {
		if tokoID == nil || b.TokoID == *tokoID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBarangRepo) FindByID(id uuid.UUID) (*model.Barang, error) {
	b, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return b, nil
}

func (r *fakeBarangRepo) Update(id uuid.UUID, fields map[string]interface{}) (*model.Barang, error) {
	b, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	for k, v := range fields {
		switch k {
		case "nama":
			b.Nama = v.(string)
		case "image_url":
			b.ImageURL = v.(string)
		case "harga":
			b.Harga = v.(int64)
		case "stok":
			b.Stok = v.(int)
		}
	}
	return b, nil
}

func (r *fakeBarangRepo) Delete(id uuid.UUID) error {
	if _, ok := r.items[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.items, id)
	return nil
}

type fakeTokoRepo struct {
	items map[uuid.UUID]*model.Toko
}

func (r *fakeTokoRepo) Create(t *model.Toko) error {
	t.ID = uuid.New()
	r.items[t.ID] = t
	return nil
}

func (r *fakeTokoRepo) FindAll() ([]model.Toko, error) {
	out := make([]model.Toko, 0, len(r.items))
	for _, t := range r.items {
		out = append(out, *t)
	}
	return out, nil
}

func (r *fakeTokoRepo) FindByID(id uuid.UUID) (*model.Toko, error) {
	t, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return t, nil
}

func (r *fakeTokoRepo) Update(id uuid.UUID, fields map[string]interface{}) (*model.Toko, error) {
	t, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	for k, v := range fields {
		switch k {
		case "nama":
			t.Nama = v.(string)
		case "alamat":
			t.Alamat = v.(string)
		case "image_url":
			t.ImageURL = v.(string)
		}
	}
	return t, nil
}

func (r *fakeTokoRepo) Delete(id uuid.UUID) error {
	if _, ok := r.items[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.items, id)
	return nil
}

type fakeBankSampahRepo struct {
	items map[uuid.UUID]*model.BankSampah
}

func (r *fakeBankSampahRepo) Create(b *model.BankSampah) error {
	b.ID = uuid.New()
	r.items[b.ID] = b
	return nil
}

func (r *fakeBankSampahRepo) FindAll() ([]model.BankSampah, error) {
	out := make([]model.BankSampah, 0, len(r.items))
	for _, b := range r.items {
		out = append(out, *b)
	}
	return out, nil
}

func (r *fakeBankSampahRepo) FindByID(id uuid.UUID) (*model.BankSampah, error) {
	b, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return b, nil
}

func (r *fakeBankSampahRepo) Update(id uuid.UUID, fields map[string]interface{}) (*model.BankSampah, error) {
	b, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if v, ok := fields["name"]; ok {
		b.Name = v.(string)
	}
	if v, ok := fields["location"]; ok {
		b.Location = v.(string)
	}
	return b, nil
}

func (r *fakeBankSampahRepo) Delete(id uuid.UUID) error {
	if _, ok := r.items[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.items, id)
	return nil
}

type fakePelaporanRepo struct {
	items map[uuid.UUID]*model.Pelaporan
}

func (r *fakePelaporanRepo) Create(p *model.Pelaporan) error {
	p.ID = uuid.New()
	r.items[p.ID] = p
	return nil
}

func (r *fakePelaporanRepo) FindAll(userID *uuid.UUID) ([]model.Pelaporan, error) {
	var out []model.Pelaporan
	for _, p := range r.items {
		if userID == nil || p.UserID == *userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePelaporanRepo) FindByID(id uuid.UUID) (*model.Pelaporan, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *fakePelaporanRepo) Update(id uuid.UUID, fields map[string]interface{}) (*model.Pelaporan, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	for k, v := range fields {
		switch k {
		case "judul":
			p.Judul = v.(string)
		case "description":
			p.Description = v.(string)
		case "status":
			p.Status = v.(model.ReportStatus)
		}
	}
	return p, nil
}

func (r *fakePelaporanRepo) Delete(id uuid.UUID) error {
	if _, ok := r.items[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.items, id)
	return nil
}

// fakePenukaranRepo keeps records in insertion order and emulates the
// all-or-nothing behaviour of the database transaction.
type fakePenukaranRepo struct {
	mu    sync.Mutex
	users *fakeUserRepo
	rows  []*model.Penukaran
}

func (r *fakePenukaranRepo) Create(p *model.Penukaran) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	cp := *p
	r.rows = append(r.rows, &cp)
	return nil
}

func (r *fakePenukaranRepo) FindAll(f repository.PenukaranFilter) ([]model.Penukaran, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Penukaran
	for _, p := range r.rows {
		if f.UserID != nil && p.UserID != *f.UserID {
			continue
		}
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		if f.DateFrom != nil && f.DateTo != nil && (p.CreatedAt.Before(*f.DateFrom) || p.CreatedAt.After(*f.DateTo)) {
			continue
		}
		out = append(out, *p)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	if f.Offset >= len(out) {
		return []model.Penukaran{}, nil
	}
	out = out[f.Offset:]
	if f.Limit > 0 && f.Limit < len(out) {
		out = out[:f.Limit]
	}
	return out, nil
}

func (r *fakePenukaranRepo) find(id uuid.UUID) *model.Penukaran {
	for _, p := range r.rows {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (r *fakePenukaranRepo) FindByID(id uuid.UUID) (*model.Penukaran, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.find(id)
	if p == nil {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakePenukaranRepo) Transition(id uuid.UUID, apply repository.PenukaranTransitionFunc) (*model.Penukaran, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := r.find(id)
	if stored == nil {
		return nil, gorm.ErrRecordNotFound
	}
	working := *stored
	delta, err := apply(&working)
	if err != nil {
		return nil, err
	}
	if delta != 0 {
		if err := r.users.adjust(working.UserID, delta); err != nil {
			return nil, err
		}
	}
	*stored = working
	return &working, nil
}

func (r *fakePenukaranRepo) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.rows {
		if p.ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakePaymentRepo struct {
	mu    sync.Mutex
	users *fakeUserRepo
	rows  map[uuid.UUID]*model.Payment
}

func (r *fakePaymentRepo) Create(p *model.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	cp := *p
	r.rows[p.ID] = &cp
	return nil
}

func (r *fakePaymentRepo) FindAll(*uuid.UUID) ([]model.Payment, error) { return nil, nil }

func (r *fakePaymentRepo) FindByID(id uuid.UUID) (*model.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakePaymentRepo) Transition(id uuid.UUID, apply repository.PaymentTransitionFunc) (*model.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	working := *stored
	delta, err := apply(&working)
	if err != nil {
		return nil, err
	}
	if delta != 0 {
		if err := r.users.adjust(working.UserID, delta); err != nil {
			return nil, err
		}
	}
	*stored = working
	return &working, nil
}

func (r *fakePaymentRepo) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.rows, id)
	return nil
}

type sentEvent struct {
	Type string
	Key  string
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []sentEvent
}

func (n *recordingNotifier) Notify(eventType, key string, _ interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, sentEvent{Type: eventType, Key: key})
}

func (n *recordingNotifier) types() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.events))
	for i, e := range n.events {
		out[i] = e.Type
	}
	return out
}
