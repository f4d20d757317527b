package routes

import (
	"context"
	"net/http"

	"stayhub/config"
	"stayhub/constants"
	"stayhub/controllers"
	middlewares "stayhub/middleware"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
)

// SetupRoutes registers every API endpoint. Catalog reads are public;
// everything that touches accounts, stays or money requires a token, and
// inventory management is staff only.
func SetupRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1")
	v1.Use(middlewares.SessionMiddleware())

	v1.POST("/auth/register", controllers.Register)
	v1.POST("/auth/login", controllers.Login)
	v1.POST("/auth/google", controllers.AuthGoogle)
	v1.POST("/auth/logout", middlewares.AuthMiddleware(), controllers.Logout)

	v1.GET("/users", middlewares.AuthMiddleware(), controllers.GetUsers)
	v1.GET("/users/:id", middlewares.AuthMiddleware(), controllers.GetUserByID)
	v1.PUT("/users/:id", middlewares.AuthMiddleware(), controllers.UpdateUser)
	v1.GET("/profile", middlewares.AuthMiddleware(), controllers.GetProfile)

	v1.GET("/roomTypes", controllers.GetRoomTypes)
	v1.GET("/roomTypes/suggest", controllers.SuggestRoomTypes)
	v1.GET("/roomTypes/:id", controllers.GetRoomTypeByID)
	v1.POST("/roomTypes", middlewares.AuthMiddleware(constants.RoleStaff), controllers.CreateRoomType)
	v1.PUT("/roomTypes", middlewares.AuthMiddleware(constants.RoleStaff), controllers.UpdateRoomType)
	v1.DELETE("/roomTypes/:id", middlewares.AuthMiddleware(constants.RoleStaff), controllers.DeleteRoomType)

	v1.GET("/rooms", controllers.GetRooms)
	v1.GET("/rooms/:id", controllers.GetRoomByID)
	v1.POST("/rooms", middlewares.AuthMiddleware(constants.RoleStaff), controllers.CreateRoom)
	v1.PUT("/rooms", middlewares.AuthMiddleware(constants.RoleStaff), controllers.UpdateRoom)
	v1.PUT("/roomStatus", middlewares.AuthMiddleware(constants.RoleStaff), controllers.ChangeRoomStatus)
	v1.DELETE("/rooms/:id", middlewares.AuthMiddleware(constants.RoleStaff), controllers.DeleteRoom)

	v1.GET("/serviceTypes", controllers.GetServiceTypes)
	v1.GET("/serviceTypes/:id", controllers.GetServiceTypeByID)
	v1.POST("/serviceTypes", middlewares.AuthMiddleware(constants.RoleStaff), controllers.CreateServiceType)
	v1.PUT("/serviceTypes", middlewares.AuthMiddleware(constants.RoleStaff), controllers.UpdateServiceType)

	v1.GET("/services", controllers.GetServices)
	v1.GET("/services/:id", controllers.GetServiceByID)
	v1.POST("/services", middlewares.AuthMiddleware(constants.RoleStaff), controllers.CreateService)
	v1.PUT("/services", middlewares.AuthMiddleware(constants.RoleStaff), controllers.UpdateService)
	v1.PUT("/serviceStatus", middlewares.AuthMiddleware(constants.RoleStaff), controllers.ChangeServiceStatus)

	v1.GET("/reservations", middlewares.AuthMiddleware(), controllers.GetReservations)
	v1.POST("/reservations", middlewares.AuthMiddleware(), controllers.CreateReservation)
	v1.GET("/reservations/:id", middlewares.AuthMiddleware(), controllers.GetReservationByID)
	v1.PUT("/reservationStatus", middlewares.AuthMiddleware(), controllers.ChangeReservationStatus)
	v1.DELETE("/reservations/:id", middlewares.AuthMiddleware(constants.RoleStaff), controllers.DeleteReservation)
	v1.GET("/reservations/:id/services", middlewares.AuthMiddleware(), controllers.GetReservationServices)
	v1.GET("/reservations/:id/total", middlewares.AuthMiddleware(), controllers.GetReservationTotal)
	v1.POST("/reservationServices", middlewares.AuthMiddleware(), controllers.AddReservationService)
	v1.DELETE("/reservationServices/:itemId", middlewares.AuthMiddleware(), controllers.DeleteReservationService)

	v1.GET("/payments", middlewares.AuthMiddleware(), controllers.GetPayments)
	v1.POST("/payments", middlewares.AuthMiddleware(), controllers.CreatePayment)
	v1.GET("/payments/:id", middlewares.AuthMiddleware(), controllers.GetPaymentByID)
	v1.PUT("/paymentSettle", middlewares.AuthMiddleware(constants.RoleStaff), controllers.SettlePayment)
	v1.PUT("/paymentRefund", middlewares.AuthMiddleware(constants.RoleStaff), controllers.RefundPayment)

	v1.GET("/reviews", middlewares.AuthMiddleware(), controllers.GetReviews)
	v1.POST("/reviews", middlewares.AuthMiddleware(), controllers.CreateReview)
	v1.GET("/reviews/:id", middlewares.AuthMiddleware(), controllers.GetReviewByID)
	v1.PUT("/reviews", middlewares.AuthMiddleware(), controllers.UpdateReview)
	v1.DELETE("/reviews/:id", middlewares.AuthMiddleware(), controllers.DeleteReview)

	v1.POST("/img/upload", middlewares.AuthMiddleware(constants.RoleStaff), func(c *gin.Context) {
		if config.Cloudinary == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Photo uploads are not configured"})
			return
		}

		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Could not open file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "rooms"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload successful",
			"url":     resp.SecureURL,
		})
	})

	v1.POST("/img/multi-upload", middlewares.AuthMiddleware(constants.RoleStaff), func(c *gin.Context) {
		if config.Cloudinary == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Photo uploads are not configured"})
			return
		}

		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No files provided"})
			return
		}
		files := form.File["files"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No files provided"})
			return
		}

		var urls []string
		for _, file := range files {
			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Could not open file"})
				return
			}
			defer src.Close()

			ctx := context.Background()
			resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "rooms"})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
				return
			}
			urls = append(urls, resp.SecureURL)
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload successful",
			"urls":    urls,
		})
	})
}
