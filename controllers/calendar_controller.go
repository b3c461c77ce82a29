package controllers

import (
	"net/http"

	"github.com/Zzzzzsaz/ecommifyy/config"
	"github.com/Zzzzzsaz/ecommifyy/models"
	"github.com/Zzzzzsaz/ecommifyy/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func CreateTask(c *gin.Context) {
	var input struct {
		Title   string `json:"title"`
		Status  string `json:"status"`
		DueDate string `json:"due_date"`
		ShopID  *int   `json:"shop_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Title == "" {
		utils.BadRequest(c, "Nieprawidlowe dane")
		return
	}
	if input.Status == "" {
		input.Status = "todo"
	}

	task := models.Task{
		ID:      uuid.NewString(),
		Title:   input.Title,
		Status:  input.Status,
		DueDate: input.DueDate,
		ShopID:  input.ShopID,
	}
	if err := config.DB.Create(&task).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func GetTasks(c *gin.Context) {
	q := config.DB.Model(&models.Task{})
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var tasks []models.Task
	if err := q.Order("created_at DESC").Find(&tasks).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func UpdateTask(c *gin.Context) {
	var task models.Task
	if err := config.DB.Where("id = ?", c.Param("id")).First(&task).Error; err != nil {
		utils.NotFound(c, "Nie znaleziono zadania")
		return
	}

	var input struct {
		Title   *string `json:"title"`
		Status  *string `json:"status"`
		DueDate *string `json:"due_date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequest(c, "Nieprawidlowe dane")
		return
	}
	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Status != nil {
		task.Status = *input.Status
	}
	if input.DueDate != nil {
		task.DueDate = *input.DueDate
	}

	if err := config.DB.Save(&task).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func DeleteTask(c *gin.Context) {
	var task models.Task
	if err := config.DB.Where("id = ?", c.Param("id")).First(&task).Error; err != nil {
		utils.NotFound(c, "Nie znaleziono zadania")
		return
	}
	if err := config.DB.Delete(&task).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func CreateNote(c *gin.Context) {
	var input struct {
		Date    string `json:"date"`
		Content string `json:"content"`
		ShopID  *int   `json:"shop_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Content == "" {
		utils.BadRequest(c, "Nieprawidlowe dane")
		return
	}

	note := models.CalendarNote{
		ID:      uuid.NewString(),
		Date:    input.Date,
		Content: input.Content,
		ShopID:  input.ShopID,
	}
	if err := config.DB.Create(&note).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

func GetNotes(c *gin.Context) {
	q := config.DB.Model(&models.CalendarNote{})
	if date := c.Query("date"); date != "" {
		q = q.Where("date = ?", date)
	} else if prefix, ok := monthQuery(c); ok {
		q = q.Where("date LIKE ?", prefix+"%")
	}
	if shopID := c.Query("shop_id"); shopID != "" {
		q = q.Where("shop_id = ?", shopID)
	}

	var notes []models.CalendarNote
	if err := q.Order("date").Find(&notes).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

func DeleteNote(c *gin.Context) {
	var note models.CalendarNote
	if err := config.DB.Where("id = ?", c.Param("id")).First(&note).Error; err != nil {
		utils.NotFound(c, "Nie znaleziono notatki")
		return
	}
	if err := config.DB.Delete(&note).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func CreateReminder(c *gin.Context) {
	var input struct {
		Title     string `json:"title"`
		Date      string `json:"date"`
		Time      string `json:"time"`
		Recurring string `json:"recurring"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Title == "" {
		utils.BadRequest(c, "Nieprawidlowe dane")
		return
	}
	if input.Recurring == "" {
		input.Recurring = "none"
	}

	reminder := models.Reminder{
		ID:        uuid.NewString(),
		Title:     input.Title,
		Date:      input.Date,
		Time:      input.Time,
		Recurring: input.Recurring,
	}
	if err := config.DB.Create(&reminder).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, reminder)
}

func GetReminders(c *gin.Context) {
	q := config.DB.Model(&models.Reminder{})
	if date := c.Query("date"); date != "" {
		q = q.Where("date = ?", date)
	}

	var reminders []models.Reminder
	if err := q.Order("date").Find(&reminders).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, reminders)
}

func UpdateReminder(c *gin.Context) {
	var reminder models.Reminder
	if err := config.DB.Where("id = ?", c.Param("id")).First(&reminder).Error; err != nil {
		utils.NotFound(c, "Nie znaleziono przypomnienia")
		return
	}

	var input struct {
		Title     *string `json:"title"`
		Date      *string `json:"date"`
		Time      *string `json:"time"`
		Recurring *string `json:"recurring"`
		Done      *bool   `json:"done"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequest(c, "Nieprawidlowe dane")
		return
	}
	if input.Title != nil {
		reminder.Title = *input.Title
	}
	if input.Date != nil {
		reminder.Date = *input.Date
	}
	if input.Time != nil {
		reminder.Time = *input.Time
	}
	if input.Recurring != nil {
		reminder.Recurring = *input.Recurring
	}
	if input.Done != nil {
		reminder.Done = *input.Done
	}

	if err := config.DB.Save(&reminder).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, reminder)
}

func DeleteReminder(c *gin.Context) {
	var reminder models.Reminder
	if err := config.DB.Where("id = ?", c.Param("id")).First(&reminder).Error; err != nil {
		utils.NotFound(c, "Nie znaleziono przypomnienia")
		return
	}
	if err := config.DB.Delete(&reminder).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
