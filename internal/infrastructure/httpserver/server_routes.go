package httpserver

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthCheck)
	s.echo.GET("/metrics", s.metricsEndpoint)

	api := s.echo.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/login", s.login)
	auth.POST("/register", s.register)

	// Public site surface. Reads are cache-backed and tolerate upstream
	// failures; the blog listing degrades to an empty view instead of erroring.
	api.GET("/content", s.listContent)
	api.GET("/content/:key", s.getContent)
	api.GET("/blog", s.blogPage)
	api.GET("/blog/:slug", s.blogPost)
	api.GET("/gallery", s.listGallery)
	api.GET("/reviews", s.listReviews)
	api.GET("/faq", s.listFAQ)
	api.GET("/team", s.listTeam)
	api.GET("/modules", s.listModules)

	api.POST("/leads", s.createLead, s.middleware.RateLimit.Handler())

	// Admin surface. The operator token is forwarded to the remote functions,
	// which are the actual gatekeepers.
	admin := api.Group("/admin")
	admin.Use(s.middleware.Token.RequireToken())

	adminContent := admin.Group("/content")
	adminContent.GET("/sections", s.contentSections)
	adminContent.GET("/suggestions", s.contentSuggestions)
	adminContent.POST("/edit", s.startEditingContent)
	adminContent.PUT("/edit", s.updateContent)
	adminContent.DELETE("/edit", s.cancelEditingContent)
	adminContent.POST("", s.addContent)
	adminContent.POST("/refresh", s.refreshContent)

	adminLeads := admin.Group("/leads")
	adminLeads.GET("", s.listLeads)
	adminLeads.PUT("/:id/status", s.updateLeadStatus)

	adminBlog := admin.Group("/blog")
	adminBlog.POST("", s.createBlogPost)
	adminBlog.PUT("/:id", s.updateBlogPost)
	adminBlog.DELETE("/:id", s.deleteBlogPost)
	adminBlog.POST("/generate", s.generateBlogPost)

	adminGallery := admin.Group("/gallery")
	adminGallery.POST("", s.createGalleryImage)
	adminGallery.PUT("/:id", s.updateGalleryImage)
	adminGallery.DELETE("/:id", s.deleteGalleryImage)

	adminReviews := admin.Group("/reviews")
	adminReviews.POST("", s.createReview)
	adminReviews.PUT("/:id", s.updateReview)
	adminReviews.DELETE("/:id", s.deleteReview)

	adminFAQ := admin.Group("/faq")
	adminFAQ.POST("", s.createFAQ)
	adminFAQ.PUT("/:id", s.updateFAQ)
	adminFAQ.DELETE("/:id", s.deleteFAQ)

	adminTeam := admin.Group("/team")
	adminTeam.POST("", s.createTeamMember)
	adminTeam.PUT("/:id", s.updateTeamMember)
	adminTeam.DELETE("/:id", s.deleteTeamMember)

	adminModules := admin.Group("/modules")
	adminModules.POST("", s.createModule)
	adminModules.PUT("/:id", s.updateModule)
	adminModules.DELETE("/:id", s.deleteModule)

	adminWhatsApp := admin.Group("/whatsapp")
	adminWhatsApp.GET("/queue", s.whatsAppQueue)
	adminWhatsApp.DELETE("/queue/:id", s.deleteWhatsAppQueueItem)
	adminWhatsApp.DELETE("/queue", s.deleteWhatsAppQueueByPhone)
	adminWhatsApp.POST("/send", s.whatsAppSendNow)
	adminWhatsApp.GET("/templates", s.whatsAppTemplates)
	adminWhatsApp.POST("/templates", s.createWhatsAppTemplate)
	adminWhatsApp.PUT("/templates/:id", s.updateWhatsAppTemplate)
	adminWhatsApp.DELETE("/templates/:id", s.deleteWhatsAppTemplate)
	adminWhatsApp.GET("/stats", s.whatsAppStats)
	adminWhatsApp.POST("/process", s.processWhatsAppQueue)
}
