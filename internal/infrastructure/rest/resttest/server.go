// Package resttest levanta un backend Invorax falso sobre Fiber para las
// pruebas de sesión y de los repositorios REST. Se escucha en 127.0.0.1:0 y se
// apaga con t.Cleanup.
package resttest

import (
	"net"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/invorax/invorax-go/internal/domain/entity"
)

// Server backend falso configurable. Los campos se ajustan antes de lanzar las
// peticiones del test; los contadores permiten verificar que una operación NO
// tocó la red.
type Server struct {
	URL string

	mu sync.Mutex

	// Credenciales que /login/ acepta y sesión emitida.
	Email    string
	Password string
	User     entity.User
	Access   string
	Refresh  string

	// /register/ responde 400 con error de serializer para este email.
	TakenEmail string

	// /token/refresh/: access emitido y si el refresh token sigue siendo válido.
	RefreshedAccess string
	AllowRefresh    bool

	// Datos servidos por los endpoints CRUD.
	Categories []entity.Category
	Products   []entity.Product
	Batches    []entity.Batch
	Movements  []entity.Movement

	// Paginated envuelve los listados en {count, next, previous, results}.
	Paginated bool

	LoginCalls    int
	RegisterCalls int
	RefreshCalls  int

	app *fiber.App
}

// New arranca el servidor falso con una sesión válida por defecto.
func New(t *testing.T) *Server {
	t.Helper()

	s := &Server{
		Email:           "ana@acme.test",
		Password:        "secreto123",
		User:            entity.User{ID: 7, Email: "ana@acme.test", Username: "ana", FirstName: "Ana", LastName: "Pérez", CompanyID: 3},
		Access:          "access-inicial",
		Refresh:         "refresh-inicial",
		RefreshedAccess: "access-renovado",
		AllowRefresh:    true,
	}

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	s.routes(app)
	s.app = app

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err, "debe poder escucharse en un puerto efímero")
	s.URL = "http://" + ln.Addr().String()

	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	return s
}

func (s *Server) routes(app *fiber.App) {
	app.Post("/login/", s.handleLogin)
	app.Post("/register/", s.handleRegister)
	app.Post("/token/refresh/", s.handleRefresh)

	protected := app.Group("/", s.requireBearer)
	protected.Get("/categories/", func(c *fiber.Ctx) error { return s.list(c, s.Categories) })
	protected.Get("/products/", func(c *fiber.Ctx) error { return s.list(c, s.Products) })
	protected.Get("/batches/", func(c *fiber.Ctx) error { return s.list(c, s.Batches) })
	protected.Get("/movements/", func(c *fiber.Ctx) error { return s.list(c, s.Movements) })
}

// requireBearer exige la credencial vigente (la emitida por login o por refresh).
func (s *Server) requireBearer(c *fiber.Ctx) error {
	s.mu.Lock()
	valid := map[string]bool{
		"Bearer " + s.Access:          true,
		"Bearer " + s.RefreshedAccess: true,
	}
	s.mu.Unlock()

	if !valid[c.Get(fiber.HeaderAuthorization)] {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"detail": "Authentication credentials were not provided.",
		})
	}
	return c.Next()
}

func (s *Server) handleLogin(c *fiber.Ctx) error {
	s.mu.Lock()
	s.LoginCalls++
	s.mu.Unlock()

	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cuerpo inválido"})
	}
	if in.Email != s.Email || in.Password != s.Password {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Credenciales inválidas"})
	}
	return c.JSON(fiber.Map{"access": s.Access, "refresh": s.Refresh, "user": s.User})
}

func (s *Server) handleRegister(c *fiber.Ctx) error {
	s.mu.Lock()
	s.RegisterCalls++
	s.mu.Unlock()

	var in struct {
		Email       string `json:"email"`
		Username    string `json:"username"`
		FirstName   string `json:"first_name"`
		LastName    string `json:"last_name"`
		CompanyName string `json:"company_name"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cuerpo inválido"})
	}
	if in.Email == s.TakenEmail {
		// Formato de error por campo del serializer.
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"email": []string{"usuario con este email ya existe."},
		})
	}
	user := entity.User{ID: 99, Email: in.Email, Username: in.Username, FirstName: in.FirstName, LastName: in.LastName, CompanyID: 42}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"access": s.Access, "refresh": s.Refresh, "user": user})
}

func (s *Server) handleRefresh(c *fiber.Ctx) error {
	s.mu.Lock()
	s.RefreshCalls++
	allow := s.AllowRefresh
	s.mu.Unlock()

	var in struct {
		Refresh string `json:"refresh"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cuerpo inválido"})
	}
	if !allow || in.Refresh != s.Refresh {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"detail": "Token is invalid or expired",
			"code":   "token_not_valid",
		})
	}
	return c.JSON(fiber.Map{"access": s.RefreshedAccess})
}

// list responde un listado plano o con el sobre paginado de Django.
func (s *Server) list(c *fiber.Ctx, items any) error {
	if s.Paginated {
		return c.JSON(fiber.Map{
			"count":    itemCount(items),
			"next":     nil,
			"previous": nil,
			"results":  items,
		})
	}
	return c.JSON(items)
}

func itemCount(items any) int {
	switch v := items.(type) {
	case []entity.Category:
		return len(v)
	case []entity.Product:
		return len(v)
	case []entity.Batch:
		return len(v)
	case []entity.Movement:
		return len(v)
	}
	return 0
}
