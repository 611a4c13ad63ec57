// Package httpserver exposes the read-only storefront API and affiliate
// redirect links over HTTP.
package httpserver

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tinybazaar/bazaar/internal/cms"
	"github.com/tinybazaar/bazaar/internal/model"
)

// CatalogAPI is the narrow store contract required by the HTTP API.
type CatalogAPI interface {
	model.ProductFinder
	ListProducts(categoryID string) ([]model.Product, error)
	ListCategories() ([]model.Category, error)
	ActiveBanners() ([]model.Banner, error)
	ListPosts(publishedOnly bool) ([]model.Post, error)
	FindPostBySlug(slug string) (model.Post, error)
	InsertReferral(r model.Referral) error
}

// Server serves the public storefront catalog.
type Server struct {
	addr      string
	store     CatalogAPI
	renderer  *cms.Renderer
	server    *http.Server
	listener  net.Listener
	ctx       context.Context
	cancel    context.CancelFunc
	startTime time.Time
}

// NewServer creates a storefront API server.
func NewServer(addr string, store CatalogAPI) *Server {
	if addr == "" {
		addr = "0.0.0.0:3000"
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		addr:     addr,
		store:    store,
		renderer: cms.NewRenderer(),
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/api/health", s.handleHealth)
	r.GET("/api/products", s.handleProducts)
	r.GET("/api/products/:id", s.handleProduct)
	r.GET("/api/categories", s.handleCategories)
	r.GET("/api/banners", s.handleBanners)
	r.GET("/api/posts", s.handlePosts)
	r.GET("/api/posts/:slug", s.handlePost)
	r.GET("/r/:code", s.handleReferral)

	return r
}

// Start begins serving HTTP requests.
func (s *Server) Start() error {
	gin.SetMode(gin.ReleaseMode)

	s.server = &http.Server{
		Handler:           s.routes(),
		BaseContext:       func(_ net.Listener) context.Context { return s.ctx },
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.listener = listener

	s.startTime = time.Now()

	go s.server.Serve(listener)
	return nil
}

// Addr returns the bound listen address, useful when the server was
// started on port 0. Empty before Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop() error {
	s.cancel()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(s.startTime).Round(time.Second).String(),
	})
}

func (s *Server) handleProducts(c *gin.Context) {
	products, err := s.store.ListProducts(c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": productDTOs(products)})
}

func (s *Server) handleProduct(c *gin.Context) {
	p, err := s.store.FindProduct(c.Param("id"))
	if errors.Is(err, model.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, productDTO(p))
}

func (s *Server) handleCategories(c *gin.Context) {
	cats, err := s.store.ListCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]gin.H, 0, len(cats))
	for _, cat := range cats {
		out = append(out, gin.H{"id": cat.ID, "name": cat.Name})
	}
	c.JSON(http.StatusOK, gin.H{"categories": out})
}

func (s *Server) handleBanners(c *gin.Context) {
	banners, err := s.store.ActiveBanners()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]gin.H, 0, len(banners))
	for _, b := range banners {
		out = append(out, gin.H{"id": b.ID, "title": b.Title, "image_url": b.ImageURL, "link_tab": b.LinkTab})
	}
	c.JSON(http.StatusOK, gin.H{"banners": out})
}

func (s *Server) handlePosts(c *gin.Context) {
	posts, err := s.store.ListPosts(true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]gin.H, 0, len(posts))
	for _, p := range posts {
		out = append(out, gin.H{"slug": p.Slug, "title": p.Title, "created_at": p.CreatedAt})
	}
	c.JSON(http.StatusOK, gin.H{"posts": out})
}

func (s *Server) handlePost(c *gin.Context) {
	p, err := s.store.FindPostBySlug(c.Param("slug"))
	if errors.Is(err, model.ErrNotFound) || (err == nil && !p.Published) {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	html, err := s.renderer.Render(p.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"slug":       p.Slug,
		"title":      p.Title,
		"html":       html,
		"created_at": p.CreatedAt,
	})
}

// handleReferral records one affiliate click and redirects to the
// storefront, deep-linking the product via the #product-<id> fragment.
func (s *Server) handleReferral(c *gin.Context) {
	code := c.Param("code")
	productID := c.Query("product")

	ref := model.Referral{
		ID:        newID(),
		Code:      code,
		ProductID: productID,
		CreatedAt: time.Now(),
	}
	if err := s.store.InsertReferral(ref); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	target := "/"
	if productID != "" {
		target = "/#product-" + productID
	}
	c.Redirect(http.StatusFound, target)
}

func productDTO(p model.Product) gin.H {
	return gin.H{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"category_id": p.CategoryID,
		"price_cents": p.PriceCents,
		"image_url":   p.ImageURL,
		"featured":    p.Featured,
	}
}

func productDTOs(products []model.Product) []gin.H {
	out := make([]gin.H, 0, len(products))
	for _, p := range products {
		out = append(out, productDTO(p))
	}
	return out
}

func newID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("ref-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b[:])
}
