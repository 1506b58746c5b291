package routes

import (
	"github.com/gin-gonic/gin"

	"schoolapi/controllers"
	"schoolapi/middleware"
	models "schoolapi/model"
)

// Register wires every route group onto the engine. Read endpoints need a
// valid token; writes need an ADMIN or TEACHER role; deletes are mostly
// ADMIN only, mirroring how the routes were gated per resource.
func Register(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.GET("/me", middleware.RequireAuth(), controllers.Me)
	}

	api := r.Group("/api", middleware.RequireAuth())

	classes := api.Group("/classes")
	{
		classes.GET("", controllers.GetAllClasses)
		classes.GET("/:id", controllers.GetClassByID)
		classes.POST("", middleware.RequireRoles(models.RoleAdmin, models.RoleTeacher), controllers.CreateClass)
		classes.PUT("/:id", middleware.RequireRoles(models.RoleAdmin, models.RoleTeacher), controllers.UpdateClass)
		classes.DELETE("/:id", middleware.RequireRoles(models.RoleAdmin), controllers.DeleteClass)
	}

	users := api.Group("/users", middleware.RequireRoles(models.RoleAdmin))
	{
		users.GET("", controllers.GetAllUsers)
		users.GET("/:id", controllers.GetUserByID)
		users.DELETE("/:id", controllers.DeleteUser)
	}

	students := api.Group("/student")
	{
		students.GET("", controllers.GetAllStudents)
		students.GET("/:id", controllers.GetStudentByID)
		students.GET("/class/:classId", controllers.GetStudentsByClass)
		students.POST("", middleware.RequireRoles(models.RoleAdmin, models.RoleTeacher), controllers.CreateStudent)
		students.PUT("/:id", middleware.RequireRoles(models.RoleAdmin, models.RoleTeacher), controllers.UpdateStudent)
		students.DELETE("/:id", middleware.RequireRoles(models.RoleAdmin), controllers.DeleteStudent)
	}

	subjects := api.Group("/subject")
	{
		subjects.GET("", controllers.GetAllSubjects)
		subjects.GET("/:id", controllers.GetSubjectByID)
		subjects.POST("", middleware.RequireRoles(models.RoleAdmin, models.RoleTeacher), controllers.CreateSubject)
		subjects.PUT("/:id", middleware.RequireRoles(models.RoleAdmin, models.RoleTeacher), controllers.UpdateSubject)
		subjects.DELETE("/:id", middleware.RequireRoles(models.RoleAdmin), controllers.DeleteSubject)
	}

	sessions := api.Group("/sessions")
	{
		sessions.GET("", controllers.GetAllSessions)
		sessions.GET("/:id", controllers.GetSessionByID)
		sessions.POST("", middleware.RequireRoles(models.RoleAdmin, models.RoleTeacher), controllers.CreateSession)
		sessions.PUT("/:id", middleware.RequireRoles(models.RoleAdmin, models.RoleTeacher), controllers.UpdateSession)
		sessions.DELETE("/:id", middleware.RequireRoles(models.RoleAdmin), controllers.DeleteSession)
	}

	attendances := api.Group("/attendances")
	{
		attendances.POST("", middleware.RequireRoles(models.RoleAdmin, models.RoleTeacher), controllers.CreateAttendance)
		attendances.DELETE("/:id", middleware.RequireRoles(models.RoleAdmin, models.RoleTeacher), controllers.DeleteAttendance)
	}
}
