package handler

import (
	"go-banksampah/internal/model"
	"go-banksampah/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPenukaranService is a mock implementation of service.PenukaranService
type MockPenukaranService struct {
	mock.Mock
}

func (m *MockPenukaranService) CreatePenukaran(req *service.CreatePenukaranRequest) (*model.Penukaran, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Penukaran), args.Error(1)
}

func (m *MockPenukaranService) ListPenukaran(q *service.PenukaranQuery) ([]model.Penukaran, error) {
	args := m.Called(q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Penukaran), args.Error(1)
}

func (m *MockPenukaranService) GetPenukaranByID(id uuid.UUID) (*model.Penukaran, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Penukaran), args.Error(1)
}

func (m *MockPenukaranService) UpdateStatus(id uuid.UUID, req *service.UpdatePenukaranStatusRequest) (*model.Penukaran, error) {
	args := m.Called(id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Penukaran), args.Error(1)
}

func (m *MockPenukaranService) DeletePenukaran(id uuid.UUID) error {
	return m.Called(id).Error(0)
}

// MockPaymentService is a mock implementation of service.PaymentService
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) CreatePayment(req *service.CreatePaymentRequest) (*model.Payment, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payment), args.Error(1)
}

func (m *MockPaymentService) GetAllPayments(userID *uuid.UUID) ([]model.Payment, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Payment), args.Error(1)
}

func (m *MockPaymentService) GetPaymentByID(id uuid.UUID) (*model.Payment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payment), args.Error(1)
}

func (m *MockPaymentService) UpdateStatus(id uuid.UUID, req *service.UpdatePaymentStatusRequest) (*model.Payment, error) {
	args := m.Called(id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payment), args.Error(1)
}

func (m *MockPaymentService) DeletePayment(id uuid.UUID) error {
	return m.Called(id).Error(0)
}

// MockAuthService is a mock implementation of service.AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(req *service.SignupRequest, byAdmin bool) (*model.User, error) {
	args := m.Called(req, byAdmin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Login(req *service.LoginRequest) (*service.LoginResponse, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.LoginResponse), args.Error(1)
}

func (m *MockAuthService) ValidateToken(token string) (*model.UserResponse, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserResponse), args.Error(1)
}

func (m *MockAuthService) Me(userID uuid.UUID) (*model.UserResponse, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserResponse), args.Error(1)
}

// MockUserService is a mock implementation of service.UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetAllUsers() ([]model.UserResponse, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UserResponse), args.Error(1)
}

func (m *MockUserService) GetUserByID(id uuid.UUID) (*model.UserResponse, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserResponse), args.Error(1)
}

func (m *MockUserService) UpdateUser(id uuid.UUID, req *service.UpdateUserRequest, byAdmin bool) (*model.UserResponse, error) {
	args := m.Called(id, req, byAdmin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserResponse), args.Error(1)
}

func (m *MockUserService) DeleteUser(id uuid.UUID) error {
	return m.Called(id).Error(0)
}

// MockTokoService is a mock implementation of service.TokoService
type MockTokoService struct {
	mock.Mock
}

func (m *MockTokoService) CreateToko(req *service.CreateTokoRequest) (*model.Toko, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Toko), args.Error(1)
}

func (m *MockTokoService) GetAllToko() ([]model.Toko, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Toko), args.Error(1)
}

func (m *MockTokoService) GetTokoByID(id uuid.UUID) (*model.Toko, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Toko), args.Error(1)
}

func (m *MockTokoService) UpdateToko(id uuid.UUID, req *service.UpdateTokoRequest) (*model.Toko, error) {
	args := m.Called(id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Toko), args.Error(1)
}

func (m *MockTokoService) DeleteToko(id uuid.UUID) error {
	return m.Called(id).Error(0)
}

func (m *MockTokoService) CreateBarang(req *service.CreateBarangRequest) (*model.Barang, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Barang), args.Error(1)
}

func (m *MockTokoService) GetAllBarang(tokoID *uuid.UUID) ([]model.Barang, error) {
	args := m.Called(tokoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Barang), args.Error(1)
}

func (m *MockTokoService) GetBarangByID(id uuid.UUID) (*model.Barang, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Barang), args.Error(1)
}

func (m *MockTokoService) UpdateBarang(id uuid.UUID, req *service.UpdateBarangRequest) (*model.Barang, error) {
	args := m.Called(id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Barang), args.Error(1)
}

func (m *MockTokoService) DeleteBarang(id uuid.UUID) error {
	return m.Called(id).Error(0)
}

// MockBankSampahService is a mock implementation of service.BankSampahService
type MockBankSampahService struct {
	mock.Mock
}

func (m *MockBankSampahService) CreateBankSampah(req *service.CreateBankSampahRequest) (*model.BankSampah, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BankSampah), args.Error(1)
}

func (m *MockBankSampahService) GetAllBankSampah() ([]model.BankSampah, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BankSampah), args.Error(1)
}

func (m *MockBankSampahService) GetBankSampahByID(id uuid.UUID) (*model.BankSampah, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BankSampah), args.Error(1)
}

func (m *MockBankSampahService) UpdateBankSampah(id uuid.UUID, req *service.UpdateBankSampahRequest) (*model.BankSampah, error) {
	args := m.Called(id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BankSampah), args.Error(1)
}

func (m *MockBankSampahService) DeleteBankSampah(id uuid.UUID) error {
	return m.Called(id).Error(0)
}

func (m *MockBankSampahService) CreateSampah(req *service.CreateSampahRequest) (*model.Sampah, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Sampah), args.Error(1)
}

func (m *MockBankSampahService) GetAllSampah(bankSampahID *uuid.UUID) ([]model.Sampah, error) {
	args := m.Called(bankSampahID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Sampah), args.Error(1)
}

func (m *MockBankSampahService) GetSampahByID(id uuid.UUID) (*model.Sampah, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Sampah), args.Error(1)
}

func (m *MockBankSampahService) UpdateSampah(id uuid.UUID, req *service.UpdateSampahRequest) (*model.Sampah, error) {
	args := m.Called(id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Sampah), args.Error(1)
}

func (m *MockBankSampahService) DeleteSampah(id uuid.UUID) error {
	return m.Called(id).Error(0)
}

// MockPelaporanService is a mock implementation of service.PelaporanService
type MockPelaporanService struct {
	mock.Mock
}

func (m *MockPelaporanService) CreatePelaporan(req *service.CreatePelaporanRequest) (*model.Pelaporan, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pelaporan), args.Error(1)
}

func (m *MockPelaporanService) GetAllPelaporan(userID *uuid.UUID) ([]model.Pelaporan, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Pelaporan), args.Error(1)
}

func (m *MockPelaporanService) GetPelaporanByID(id uuid.UUID) (*model.Pelaporan, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pelaporan), args.Error(1)
}

func (m *MockPelaporanService) UpdatePelaporan(id uuid.UUID, req *service.UpdatePelaporanRequest) (*model.Pelaporan, error) {
	args := m.Called(id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pelaporan), args.Error(1)
}

func (m *MockPelaporanService) DeletePelaporan(id uuid.UUID) error {
	return m.Called(id).Error(0)
}
