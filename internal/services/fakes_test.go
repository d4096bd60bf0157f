package services

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/condogestor/condoasset-backend/internal/domain/assetcode"
	"github.com/condogestor/condoasset-backend/internal/domain/entities"
	"github.com/condogestor/condoasset-backend/internal/domain/ports"
)

// Fakes em memória para os testes de serviço. Cada fake implementa a
// interface do repositório correspondente com a mesma convenção do GORM:
// buscas sem resultado retornam (nil, nil).

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entities.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByCpfCnpj(_ context.Context, cpfCnpj string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.CpfCnpj == cpfCnpj {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByWhatsapp(_ context.Context, whatsapp string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Whatsapp == whatsapp {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user, ok := r.users[id]; ok {
		user.PasswordHash = passwordHash
	}
	return nil
}

type fakeImovelRepo struct {
	mu      sync.Mutex
	imoveis map[string]*entities.Imovel
}

func newFakeImovelRepo() *fakeImovelRepo {
	return &fakeImovelRepo{imoveis: make(map[string]*entities.Imovel)}
}

func (r *fakeImovelRepo) Create(_ context.Context, imovel *entities.Imovel) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if imovel.ID == "" {
		imovel.ID = uuid.NewString()
	}
	copied := *imovel
	r.imoveis[imovel.ID] = &copied
	return nil
}

func (r *fakeImovelRepo) FindByID(_ context.Context, id string) (*entities.Imovel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	imovel, ok := r.imoveis[id]
	if !ok {
		return nil, nil
	}
	copied := *imovel
	return &copied, nil
}

func (r *fakeImovelRepo) FindByCnpj(_ context.Context, cnpj string) (*entities.Imovel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, imovel := range r.imoveis {
		if imovel.Cnpj == cnpj {
			copied := *imovel
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeImovelRepo) ListByGestor(_ context.Context, gestorID string) ([]*entities.Imovel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*entities.Imovel
	for _, imovel := range r.imoveis {
		if imovel.GestorID == gestorID {
			copied := *imovel
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *fakeImovelRepo) Update(_ context.Context, imovel *entities.Imovel) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *imovel
	r.imoveis[imovel.ID] = &copied
	return nil
}

func (r *fakeImovelRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.imoveis, id)
	return nil
}

type fakeAtivoRepo struct {
	mu     sync.Mutex
	ativos map[string]*entities.Ativo
}

func newFakeAtivoRepo() *fakeAtivoRepo {
	return &fakeAtivoRepo{ativos: make(map[string]*entities.Ativo)}
}

func (r *fakeAtivoRepo) Create(_ context.Context, ativo *entities.Ativo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ativo.ID == "" {
		ativo.ID = uuid.NewString()
	}
	copied := *ativo
	r.ativos[ativo.ID] = &copied
	return nil
}

func (r *fakeAtivoRepo) FindByID(_ context.Context, imovelID, ativoID string) (*entities.Ativo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ativo, ok := r.ativos[ativoID]
	if !ok || ativo.ImovelID != imovelID {
		return nil, nil
	}
	copied := *ativo
	return &copied, nil
}

func (r *fakeAtivoRepo) ListByImovel(_ context.Context, imovelID string) ([]*entities.Ativo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*entities.Ativo
	for _, ativo := range r.ativos {
		if ativo.ImovelID == imovelID {
			copied := *ativo
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].AssetCode < result[j].AssetCode })
	return result, nil
}

func (r *fakeAtivoRepo) CountByImovel(_ context.Context, imovelID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	for _, ativo := range r.ativos {
		if ativo.ImovelID == imovelID {
			count++
		}
	}
	return count, nil
}

func (r *fakeAtivoRepo) Update(_ context.Context, ativo *entities.Ativo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *ativo
	r.ativos[ativo.ID] = &copied
	return nil
}

func (r *fakeAtivoRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.ativos, id)
	return nil
}

type fakeChamadoRepo struct {
	mu              sync.Mutex
	countsByImovel  map[string]int64
	countsByAtivo   map[string]int64
	recentsByImovel map[string][]*entities.Chamado
	recentsByAtivo  map[string][]*entities.Chamado
}

func newFakeChamadoRepo() *fakeChamadoRepo {
	return &fakeChamadoRepo{
		countsByImovel:  make(map[string]int64),
		countsByAtivo:   make(map[string]int64),
		recentsByImovel: make(map[string][]*entities.Chamado),
		recentsByAtivo:  make(map[string][]*entities.Chamado),
	}
}

func (r *fakeChamadoRepo) CountByImovel(_ context.Context, imovelID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.countsByImovel[imovelID], nil
}

func (r *fakeChamadoRepo) CountByAtivo(_ context.Context, ativoID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.countsByAtivo[ativoID], nil
}

func (r *fakeChamadoRepo) ListRecentByImovel(_ context.Context, imovelID string, limit int) ([]*entities.Chamado, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	chamados := r.recentsByImovel[imovelID]
	if len(chamados) > limit {
		chamados = chamados[:limit]
	}
	return chamados, nil
}

func (r *fakeChamadoRepo) ListRecentByAtivo(_ context.Context, ativoID string, limit int) ([]*entities.Chamado, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	chamados := r.recentsByAtivo[ativoID]
	if len(chamados) > limit {
		chamados = chamados[:limit]
	}
	return chamados, nil
}

// fakeSequence emite códigos sequenciais formatados, protegido por mutex
type fakeSequence struct {
	mu    sync.Mutex
	value int64
}

func (s *fakeSequence) Next(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.value++
	return assetcode.Format(s.value), nil
}

// fakeUnitOfWork executa a função diretamente, sem transação real
type fakeUnitOfWork struct{}

func (fakeUnitOfWork) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (fakeUnitOfWork) Commit(context.Context) error                       { return nil }
func (fakeUnitOfWork) Rollback(context.Context) error                     { return nil }

func (fakeUnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

// nopLogger descarta todas as mensagens
type nopLogger struct{}

func (nopLogger) Info(string, ...any)        {}
func (nopLogger) Error(string, ...any)       {}
func (nopLogger) Debug(string, ...any)       {}
func (nopLogger) Warn(string, ...any)        {}
func (l nopLogger) With(...any) ports.Logger { return l }

// capturePublisher registra os eventos publicados por gestor
type capturePublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

type publishedEvent struct {
	GestorID string
	Event    ports.Event
}

func (p *capturePublisher) Publish(gestorID string, event ports.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{GestorID: gestorID, Event: event})
}

func (p *capturePublisher) published() []publishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]publishedEvent(nil), p.events...)
}
