package placeholderapi

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
)

// Post is a stored post. UserID keeps whatever JSON type the client sent.
type Post struct {
	ID     int             `json:"id"`
	Title  string          `json:"title"`
	Body   string          `json:"body"`
	UserID json.RawMessage `json:"userId"`
}

// User is a stored author.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

type createRequest struct {
	Title  string          `json:"title"`
	Body   string          `json:"body"`
	UserID json.RawMessage `json:"userId"`
}

// Server is an in-memory stand-in for the remote collection endpoint.
type Server struct {
	mu     sync.RWMutex
	posts  []Post
	users  []User
	nextID int
	logger *slog.Logger
}

// New creates a server holding the given seed data. A nil logger discards logs.
func New(posts []Post, users []User, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	next := 1
	for _, p := range posts {
		next = max(next, p.ID+1)
	}
	return &Server{
		posts:  append([]Post(nil), posts...),
		users:  append([]User(nil), users...),
		nextID: next,
		logger: logger,
	}
}

// App builds the fiber application serving the API.
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "placeholderd",
		DisableStartupMessage: true,
	})
	app.Use(StructuredLogger(s.logger))

	app.Get("/posts", s.listPosts)
	app.Get("/posts/:id", s.getPost)
	app.Post("/posts", s.createPost)
	app.Get("/users", s.listUsers)
	return app
}

func (s *Server) listPosts(c *fiber.Ctx) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return c.JSON(s.posts)
}

func (s *Server) getPost(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid post id"})
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.posts {
		if p.ID == id {
			return c.JSON(p)
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "post not found"})
}

// createPost stores the post and echoes it back with its new id.
func (s *Server) createPost(c *fiber.Ctx) error {
	req := new(createRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Body) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Title and body are required"})
	}
	if len(req.UserID) == 0 {
		req.UserID = json.RawMessage("null")
	}

	s.mu.Lock()
	p := Post{ID: s.nextID, Title: req.Title, Body: req.Body, UserID: req.UserID}
	s.nextID++
	s.posts = append(s.posts, p)
	s.mu.Unlock()

	return c.Status(fiber.StatusCreated).JSON(p)
}

func (s *Server) listUsers(c *fiber.Ctx) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return c.JSON(s.users)
}

// DefaultSeed returns a small, deterministic data set: ten users and
// postsPerUser posts for each of them.
func DefaultSeed(postsPerUser int) ([]Post, []User) {
	names := []string{
		"Leanne Graham", "Ervin Howell", "Clementine Bauch", "Patricia Lebsack",
		"Chelsey Dietrich", "Dennis Schulist", "Kurtis Weissnat", "Nicholas Runolfsdottir",
		"Glenna Reichert", "Clementina DuBuque",
	}
	users := make([]User, 0, len(names))
	posts := make([]Post, 0, len(names)*postsPerUser)
	id := 1
	for i, name := range names {
		uid := i + 1
		users = append(users, User{
			ID:       uid,
			Name:     name,
			Username: strings.ToLower(strings.Fields(name)[0]),
		})
		for j := range postsPerUser {
			posts = append(posts, Post{
				ID:     id,
				Title:  fmt.Sprintf("post %d by %s", j+1, name),
				Body:   fmt.Sprintf("This is post number %d from user %d.", j+1, uid),
				UserID: json.RawMessage(strconv.Itoa(uid)),
			})
			id++
		}
	}
	return posts, users
}
