package ui

import "fmt"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyHeroTitle         = "hero_title"
	KeyHeroHighlight     = "hero_highlight"
	KeyHeroSubtitle      = "hero_subtitle"
	KeySearchPlaceholder = "search_placeholder"
	KeySearch            = "search"
	KeySearching         = "searching"
	KeyLoading           = "loading"
	KeyFetchFailed       = "fetch_failed"
	KeyNoResults         = "no_results"
	KeyNoResultsHint     = "no_results_hint"
	KeyResultsOne        = "results_one"
	KeyResultsMany       = "results_many"
	KeyResultsHint       = "results_hint"
	KeyViewRecipe        = "view_recipe"
	KeyWatchVideo        = "watch_video"
	KeyFooterTagline     = "footer_tagline"
	KeyFile              = "file"
	KeyView              = "view"
	KeySettings          = "settings"
	KeyToggleTheme       = "toggle_theme"
	KeyLanguage          = "language"
	KeyTheme             = "theme"
	KeyAPIBaseURL        = "api_base_url"
	KeyRequestTimeout    = "request_timeout"
	KeyThumbnailParallel = "thumbnail_parallel"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
	KeyErrorOpeningLink  = "error_opening_link"
	KeyNoLink            = "no_link"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// ResultsHeading returns the localized "Found N recipes" heading
func (l *Localization) ResultsHeading(count int) string {
	key := KeyResultsMany
	if count == 1 {
		key = KeyResultsOne
	}
	return fmt.Sprintf(l.GetText(key), count)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Recipe Finder",
		KeyHeroTitle:         "Discover Amazing",
		KeyHeroHighlight:     "Recipes",
		KeyHeroSubtitle:      "Search through thousands of delicious recipes from around the world. Find your next favorite dish in seconds.",
		KeySearchPlaceholder: "Search for recipes...",
		KeySearch:            "Search",
		KeySearching:         "Searching...",
		KeyLoading:           "Finding delicious recipes...",
		KeyFetchFailed:       "Failed to fetch recipes. Please try again.",
		KeyNoResults:         "No recipes found",
		KeyNoResultsHint:     `Try searching for something else like "cake", "chicken", or "burger"`,
		KeyResultsOne:        "Found %d delicious recipe",
		KeyResultsMany:       "Found %d delicious recipes",
		KeyResultsHint:       "Click on any recipe to view the full details",
		KeyViewRecipe:        "View Recipe",
		KeyWatchVideo:        "Watch Video",
		KeyFooterTagline:     "Discover amazing recipes from around the world.",
		KeyFile:              "File",
		KeyView:              "View",
		KeySettings:          "Settings",
		KeyToggleTheme:       "Toggle Theme",
		KeyLanguage:          "Language",
		KeyTheme:             "Theme",
		KeyAPIBaseURL:        "Recipe API URL",
		KeyRequestTimeout:    "Request Timeout (seconds)",
		KeyThumbnailParallel: "Parallel Image Downloads",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyErrorOpeningLink:  "Error opening link",
		KeyNoLink:            "This recipe has no link",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Поиск рецептов",
		KeyHeroTitle:         "Откройте удивительные",
		KeyHeroHighlight:     "рецепты",
		KeyHeroSubtitle:      "Ищите среди тысяч вкусных рецептов со всего мира. Найдите новое любимое блюдо за секунды.",
		KeySearchPlaceholder: "Искать рецепты...",
		KeySearch:            "Найти",
		KeySearching:         "Поиск...",
		KeyLoading:           "Ищем вкусные рецепты...",
		KeyFetchFailed:       "Не удалось загрузить рецепты. Попробуйте ещё раз.",
		KeyNoResults:         "Рецепты не найдены",
		KeyNoResultsHint:     `Попробуйте поискать что-нибудь другое, например "cake", "chicken" или "burger"`,
		KeyResultsOne:        "Найден %d вкусный рецепт",
		KeyResultsMany:       "Найдено вкусных рецептов: %d",
		KeyResultsHint:       "Нажмите на рецепт, чтобы открыть подробности",
		KeyViewRecipe:        "Открыть рецепт",
		KeyWatchVideo:        "Смотреть видео",
		KeyFooterTagline:     "Удивительные рецепты со всего мира.",
		KeyFile:              "Файл",
		KeyView:              "Вид",
		KeySettings:          "Настройки",
		KeyToggleTheme:       "Сменить тему",
		KeyLanguage:          "Язык",
		KeyTheme:             "Тема",
		KeyAPIBaseURL:        "URL API рецептов",
		KeyRequestTimeout:    "Тайм-аут запроса (секунды)",
		KeyThumbnailParallel: "Параллельная загрузка изображений",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyErrorOpeningLink:  "Ошибка открытия ссылки",
		KeyNoLink:            "У этого рецепта нет ссылки",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Buscador de Receitas",
		KeyHeroTitle:         "Descubra Receitas",
		KeyHeroHighlight:     "Incríveis",
		KeyHeroSubtitle:      "Pesquise milhares de receitas deliciosas do mundo todo. Encontre seu próximo prato favorito em segundos.",
		KeySearchPlaceholder: "Pesquisar receitas...",
		KeySearch:            "Pesquisar",
		KeySearching:         "Pesquisando...",
		KeyLoading:           "Procurando receitas deliciosas...",
		KeyFetchFailed:       "Falha ao buscar receitas. Tente novamente.",
		KeyNoResults:         "Nenhuma receita encontrada",
		KeyNoResultsHint:     `Tente pesquisar outra coisa como "cake", "chicken" ou "burger"`,
		KeyResultsOne:        "%d receita deliciosa encontrada",
		KeyResultsMany:       "%d receitas deliciosas encontradas",
		KeyResultsHint:       "Clique em qualquer receita para ver os detalhes",
		KeyViewRecipe:        "Ver Receita",
		KeyWatchVideo:        "Assistir Vídeo",
		KeyFooterTagline:     "Descubra receitas incríveis do mundo todo.",
		KeyFile:              "Arquivo",
		KeyView:              "Exibir",
		KeySettings:          "Configurações",
		KeyToggleTheme:       "Alternar Tema",
		KeyLanguage:          "Idioma",
		KeyTheme:             "Tema",
		KeyAPIBaseURL:        "URL da API de Receitas",
		KeyRequestTimeout:    "Tempo Limite (segundos)",
		KeyThumbnailParallel: "Downloads de Imagens Paralelos",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyErrorOpeningLink:  "Erro ao abrir link",
		KeyNoLink:            "Esta receita não tem link",
	}
}
