package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"taskboard/internal/auth"
	"taskboard/internal/domain"
	"taskboard/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	tasks  service.TaskService
	users  service.UserService
	tokens *auth.TokenManager
	logger *logrus.Logger
}

func NewHandler(tasks service.TaskService, users service.UserService, tokens *auth.TokenManager, logger *logrus.Logger) *Handler {
	return &Handler{
		tasks:  tasks,
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())
	router.Use(requestLogger(h.logger))

	router.POST("/register", h.register)
	router.POST("/login", h.login)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": "ok"})
	})

	authed := router.Group("/")
	authed.Use(authMiddleware(h.tokens))
	{
		authed.POST("/tasks", h.createTask)
		authed.GET("/tasks", h.listTasks)
		authed.PATCH("/tasks/:id", h.updateTask)
		authed.GET("/profile", h.getProfile)
		authed.POST("/profile/image", h.updateProfileImage)
	}
}

type credentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type createTaskRequest struct {
	Title     string `json:"title" binding:"required"`
	Date      string `json:"date" binding:"required"`
	IsChecked *bool  `json:"isChecked" binding:"required"`
}

type updateTaskRequest struct {
	Title     *string `json:"title"`
	Date      *string `json:"date"`
	IsChecked *bool   `json:"isChecked"`
}

func (h *Handler) register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	if _, err := h.users.Register(c.Request.Context(), req.Email, req.Password); err != nil {
		switch {
		case errors.Is(err, service.ErrUserAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{"error": "User exists"})
		case errors.Is(err, service.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.serverError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User registered"})
}

func (h *Handler) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		h.serverError(c, err)
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Email)
	if err != nil {
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *Handler) createTask(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title, date and isChecked are required"})
		return
	}

	task, err := h.tasks.Create(c.Request.Context(), identity.UserID, req.Title, req.Date, *req.IsChecked)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": taskToResponse(*task)})
}

func (h *Handler) listTasks(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	tasks, err := h.tasks.List(c.Request.Context(), identity.UserID, c.Query("date"), c.Query("search"))
	if err != nil {
		h.serverError(c, err)
		return
	}

	resp := make([]TaskResponse, len(tasks))
	for i := range tasks {
		resp[i] = taskToResponse(tasks[i])
	}
	c.JSON(http.StatusOK, gin.H{"tasks": resp})
}

func (h *Handler) updateTask(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}

	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	task, err := h.tasks.Update(c.Request.Context(), identity.UserID, id, domain.TaskPatch{
		Title:     req.Title,
		Date:      req.Date,
		IsChecked: req.IsChecked,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		case errors.Is(err, service.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.serverError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": taskToResponse(*task)})
}

func (h *Handler) getProfile(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	profile, err := h.users.GetProfile(c.Request.Context(), identity.UserID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email": profile.Email,
		"image": profile.Image,
		"stats": profile.Stats,
	})
}

func (h *Handler) updateProfileImage(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	if fileHeader.Size > service.MaxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image exceeds 5MiB limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.serverError(c, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, service.MaxImageSize+1))
	if err != nil {
		h.serverError(c, err)
		return
	}

	path, err := h.users.UpdateImage(c.Request.Context(), identity.UserID, data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		default:
			h.serverError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Image updated", "image": path})
}

func (h *Handler) serverError(c *gin.Context, err error) {
	h.logger.WithError(err).Error("internal error")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

type TaskResponse struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	IsChecked bool   `json:"isChecked"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func taskToResponse(task domain.Task) TaskResponse {
	return TaskResponse{
		ID:        task.ID,
		UserID:    task.UserID,
		Title:     task.Title,
		Date:      task.Date,
		IsChecked: task.IsChecked,
		CreatedAt: task.CreatedAt.Format(time.RFC3339),
		UpdatedAt: task.UpdatedAt.Format(time.RFC3339),
	}
}
