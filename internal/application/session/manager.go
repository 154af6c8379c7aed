package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/invorax/invorax-go/internal/application/dto"
	"github.com/invorax/invorax-go/internal/domain"
	"github.com/invorax/invorax-go/internal/domain/entity"
	"github.com/invorax/invorax-go/pkg/token"
)

// refreshLeeway margen con el que se renueva un token antes de su expiración.
const refreshLeeway = 30 * time.Second

// AuthAPI operaciones de autenticación contra el backend.
type AuthAPI interface {
	Login(ctx context.Context, in dto.LoginRequest) (*dto.TokenPairResponse, error)
	Register(ctx context.Context, in dto.RegisterRequest) (*dto.TokenPairResponse, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

// TokenSink recibe la credencial bearer vigente; el cliente HTTP la adjunta a
// cada petición saliente.
type TokenSink interface {
	SetToken(tok string)
	ClearToken()
}

// Manager administra el ciclo de vida de la sesión: login, registro, refresh y
// logout. Es el único escritor de la credencial bearer y del estado persistido;
// cada mutación reemplaza el valor completo, nunca hay actualización parcial.
type Manager struct {
	api   AuthAPI
	sink  TokenSink
	store Store
	log   zerolog.Logger

	current entity.Session
}

// NewManager construye el manager y restaura la sesión persistida si existe.
func NewManager(api AuthAPI, sink TokenSink, store Store, log zerolog.Logger) *Manager {
	m := &Manager{api: api, sink: sink, store: store, log: log}
	m.restore()
	return m
}

// restore repone la sesión desde el store. Estado parcial o corrupto se
// descarta completo: nunca se opera con token sin usuario ni al revés.
func (m *Manager) restore() {
	st, err := m.store.Load()
	if err != nil {
		m.log.Warn().Err(err).Msg("sesión persistida ilegible, se descarta")
		_ = m.store.Clear()
		return
	}
	if st == nil {
		return
	}
	// Un documento "null" también cuenta como usuario ausente.
	user := bytes.TrimSpace(st.User)
	if st.AccessToken == "" || len(user) == 0 || bytes.Equal(user, []byte("null")) {
		_ = m.store.Clear()
		return
	}

	var u entity.User
	if err := json.Unmarshal(user, &u); err != nil {
		m.log.Warn().Err(err).Msg("usuario persistido corrupto, se descarta la sesión")
		_ = m.store.Clear()
		return
	}
	if u.ID == 0 && u.Email == "" {
		// Token con usuario vacío es estado parcial; se descarta completo.
		_ = m.store.Clear()
		return
	}

	m.current = entity.Session{
		AccessToken:  st.AccessToken,
		RefreshToken: st.RefreshToken,
		User:         &u,
	}
	m.sink.SetToken(st.AccessToken)
	m.log.Debug().Str("user", u.Email).Msg("sesión restaurada")
}

// Login autentica contra /login/. En caso de error la sesión previa queda
// intacta.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return fmt.Errorf("%w: email y contraseña son requeridos", domain.ErrValidation)
	}
	out, err := m.api.Login(ctx, dto.LoginRequest{Email: email, Password: password})
	if err != nil {
		return err
	}
	m.install(out.Access, out.Refresh, out.User)
	m.log.Info().Str("user", out.User.Email).Msg("sesión iniciada")
	return nil
}

// Register registra un usuario nuevo y deja la sesión iniciada. Las
// validaciones de contraseña y empresa cortan antes de cualquier llamada de red.
func (m *Manager) Register(ctx context.Context, in dto.RegisterRequest) error {
	if in.Email == "" || in.Username == "" || in.Password == "" {
		return fmt.Errorf("%w: email, usuario y contraseña son requeridos", domain.ErrValidation)
	}
	if in.Password != in.PasswordConfirm {
		return fmt.Errorf("%w: las contraseñas no coinciden", domain.ErrValidation)
	}
	if strings.TrimSpace(in.CompanyName) == "" {
		return fmt.Errorf("%w: el nombre de la empresa es requerido", domain.ErrValidation)
	}
	out, err := m.api.Register(ctx, in)
	if err != nil {
		return err
	}
	m.install(out.Access, out.Refresh, out.User)
	m.log.Info().Str("user", out.User.Email).Msg("usuario registrado")
	return nil
}

// RefreshAccessToken renueva el access token con el refresh token guardado.
// El fallo es fatal para la sesión: se hace logout completo y se devuelve
// false; no hay reintentos. Sin refresh token no se toca la red.
func (m *Manager) RefreshAccessToken(ctx context.Context) bool {
	if m.current.RefreshToken == "" {
		m.Logout()
		return false
	}
	access, err := m.api.Refresh(ctx, m.current.RefreshToken)
	if err != nil {
		m.log.Warn().Err(err).Msg("refresh token rechazado, cerrando sesión")
		m.Logout()
		return false
	}
	m.install(access, m.current.RefreshToken, *m.current.User)
	return true
}

// Logout limpia el estado persistido y la credencial adjunta incondicionalmente.
// No puede fallar y es idempotente.
func (m *Manager) Logout() {
	_ = m.store.Clear()
	m.current = entity.Session{}
	m.sink.ClearToken()
}

// EnsureFresh verifica que haya sesión y que el access token siga vigente;
// si ya venció intenta un único refresh. Se llama antes de cada operación
// autenticada.
func (m *Manager) EnsureFresh(ctx context.Context) error {
	if !m.current.IsAuthenticated() {
		return domain.ErrNoSession
	}
	if !token.IsExpired(m.current.AccessToken, refreshLeeway) {
		return nil
	}
	if !m.RefreshAccessToken(ctx) {
		return domain.ErrSessionExpired
	}
	return nil
}

// Current devuelve una copia de la sesión en memoria.
func (m *Manager) Current() entity.Session { return m.current }

// IsAuthenticated indica si hay sesión activa.
func (m *Manager) IsAuthenticated() bool { return m.current.IsAuthenticated() }

// install persiste y publica la nueva sesión como una sola unidad: store,
// memoria y credencial adjunta se actualizan dentro del mismo turno.
func (m *Manager) install(access, refresh string, user entity.User) {
	raw, err := json.Marshal(user)
	if err != nil {
		// Marshal de un struct plano no falla; se deja el registro por si acaso.
		m.log.Error().Err(err).Msg("serializar usuario de la sesión")
	}
	if err := m.store.Save(StoredSession{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         raw,
	}); err != nil {
		m.log.Warn().Err(err).Msg("no se pudo persistir la sesión; seguirá solo en memoria")
	}
	m.current = entity.Session{AccessToken: access, RefreshToken: refresh, User: &user}
	m.sink.SetToken(access)
}
