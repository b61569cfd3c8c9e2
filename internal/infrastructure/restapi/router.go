package restapi

import (
	"embed"
	"html/template"
	"net/http"
	"strings"

	"github.com/EkaterinaGorbunova/onesource-nft-viewer/internal/infrastructure/configloader"
	"github.com/EkaterinaGorbunova/onesource-nft-viewer/internal/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templatesFS embed.FS

// NewPageTemplate parses page.html; allowedImage checks URLs against imageHosts.
func NewPageTemplate(imageHosts []string) *template.Template {
	funcs := template.FuncMap{
		"allowedImage": func(rawURL string) bool {
			return utils.IsAllowedImageHost(rawURL, imageHosts)
		},
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html"))
}

// SetupRouter настраивает и возвращает экземпляр Gin роутера.
func SetupRouter(h *NFTHandler, cfg *configloader.Config, zapLogger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(ZapLoggerMiddleware(zapLogger))
	router.Use(gin.Recovery())
	router.SetHTMLTemplate(NewPageTemplate(cfg.Display.ImageHosts))

	// HTML страница
	router.GET("/", h.IndexHandler)
	router.GET("/tokens/:contract/:tokenID", h.TokenPageHandler)

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORS.AllowOrigins) == 1 && cfg.CORS.AllowOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORS.AllowOrigins
	}
	corsConfig.AllowMethods = []string{http.MethodGet, http.MethodOptions}

	apiV1 := router.Group("/api/v1")
	apiV1.Use(cors.New(corsConfig))
	{
		apiV1.GET("/tokens/:contract/:tokenID", h.GetTokenHandler)
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.Swagger.Enabled {
		// swagger.yaml отдается как статический файл, UI берет спецификацию оттуда
		base := strings.TrimRight(cfg.Swagger.Path, "/")
		router.StaticFile("/docs/swagger.yaml", cfg.Swagger.SpecFile)
		router.GET(base+"/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/docs/swagger.yaml")))
	}

	return router
}
