package handler

import (
	"fmt"
	"net/http"

	"penny-auction/internal/i18n"
	"penny-auction/utils"

	"github.com/gin-gonic/gin"
)

// TranslationsHandler handles GET /translations/:lang
func TranslationsHandler(c *gin.Context) {
	lang := i18n.Language(c.Param("lang"))
	if !i18n.Supported(lang) {
		err := fmt.Errorf("unsupported language %q", lang)
		utils.JSONError(c, http.StatusNotFound, err, "unsupported language")
		return
	}

	utils.JSONResponse(c, http.StatusOK, i18n.Table(lang), "translations retrieved successfully")
}
