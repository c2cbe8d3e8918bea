package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Story struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Thumbnail string `json:"thumbnail"`
	Subject   string `json:"subject"`
}

type Game struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Prompt string `json:"prompt"`
	Icon   string `json:"icon"`
}

var Stories = []Story{
	{ID: 1, Title: "Space Adventure", Summary: "A thrilling journey through the stars", Thumbnail: "https://picsum.photos/300/200?random=1", Subject: "Space"},
	{ID: 2, Title: "Magic Forest", Summary: "Discover the secrets of the enchanted forest", Thumbnail: "https://picsum.photos/300/200?random=2", Subject: "Fantasy"},
	{ID: 3, Title: "Ocean Quest", Summary: "Dive deep into underwater adventures", Thumbnail: "https://picsum.photos/300/200?random=3", Subject: "Ocean"},
}

var Games = []Game{
	{ID: 1, Title: "Adventure Explorer", Prompt: "Create an adventure story where I'm a brave explorer!", Icon: "🚀"},
	{ID: 2, Title: "Magic Animals", Prompt: "Make a story about magical animals in a forest!", Icon: "🌲"},
	{ID: 3, Title: "Space Adventure", Prompt: "Tell me a space adventure with aliens and planets!", Icon: "🛸"},
	{ID: 4, Title: "Underwater Kingdom", Prompt: "Create a story about underwater kingdoms!", Icon: "🌊"},
}

type Grade struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	AgeRange string `json:"ageRange"`
}

var Grades = []Grade{
	{ID: 1, Name: "Pre-K", AgeRange: "3-5"},
	{ID: 2, Name: "Kindergarten", AgeRange: "5-6"},
	{ID: 3, Name: "Grade 1", AgeRange: "6-7"},
	{ID: 4, Name: "Grade 2", AgeRange: "7-8"},
	{ID: 5, Name: "Grade 3", AgeRange: "8-9"},
}

type Handler struct{}

func RegisterHandler(r *gin.Engine) {
	h := &Handler{}
	r.GET("/stories", h.stories)
	r.GET("/games", h.games)
	r.GET("/grades", h.grades)
}

func (s *Handler) stories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"stories": Stories})
}

func (s *Handler) games(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"games": Games})
}

func (s *Handler) grades(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"grades": Grades})
}
