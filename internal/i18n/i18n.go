package i18n

// Language is a supported UI language code.
type Language string

const (
	English    Language = "en"
	Portuguese Language = "pt"
	Japanese   Language = "ja"
)

type entry struct {
	en, pt, ja string
}

var translations = map[string]entry{
	// Navigation
	"nav.home":       {"Home", "Início", "ホーム"},
	"nav.myBids":     {"My Bids", "Meus Lances", "マイ入札"},
	"nav.buyCredits": {"Buy Credits", "Comprar Créditos", "クレジット購入"},
	"nav.settings":   {"Settings", "Configurações", "設定"},
	"nav.admin":      {"Admin", "Admin", "管理者"},
	"nav.logout":     {"Logout", "Sair", "ログアウト"},
	"nav.login":      {"Login", "Entrar", "ログイン"},

	// Home
	"home.liveAuctions":     {"Live Auctions", "Leilões Ativos", "ライブオークション"},
	"home.upcomingAuctions": {"Upcoming Auctions", "Próximos Leilões", "今後のオークション"},
	"home.currentPrice":     {"Current Price", "Preço Atual", "現在価格"},
	"home.lastBidder":       {"Last Bidder", "Último Lance", "最終入札者"},
	"home.timeLeft":         {"Time Left", "Tempo Restante", "残り時間"},
	"home.bid":              {"BID NOW", "DAR LANCE", "入札する"},
	"home.startsIn":         {"Starts in", "Começa em", "開始まで"},

	// Credits
	"credits.title":       {"Buy Bid Credits", "Comprar Créditos de Lance", "入札クレジット購入"},
	"credits.yourCredits": {"Your Credits", "Seus Créditos", "あなたのクレジット"},
	"credits.bids":        {"bids", "lances", "入札"},
	"credits.buy":         {"Buy", "Comprar", "購入"},

	// My Bids
	"myBids.title":   {"My Bids", "Meus Lances", "マイ入札"},
	"myBids.active":  {"Active Bids", "Lances Ativos", "アクティブ入札"},
	"myBids.ended":   {"Ended Auctions", "Leilões Encerrados", "終了したオークション"},
	"myBids.won":     {"WON", "GANHOU", "落札"},
	"myBids.lost":    {"LOST", "PERDEU", "未落札"},
	"myBids.winning": {"WINNING", "GANHANDO", "落札中"},

	// Auth
	"auth.login":         {"Login", "Entrar", "ログイン"},
	"auth.register":      {"Register", "Cadastrar", "登録"},
	"auth.email":         {"Email", "Email", "メールアドレス"},
	"auth.password":      {"Password", "Senha", "パスワード"},
	"auth.username":      {"Username", "Nome de Usuário", "ユーザー名"},
	"auth.createAccount": {"Create Account", "Criar Conta", "アカウント作成"},
	"auth.haveAccount":   {"Already have an account?", "Já tem uma conta?", "アカウントをお持ちですか？"},
	"auth.noAccount":     {"Don't have an account?", "Não tem uma conta?", "アカウントをお持ちでないですか？"},

	// Admin
	"admin.dashboard":      {"Admin Dashboard", "Painel Admin", "管理ダッシュボード"},
	"admin.createItem":     {"Create Item", "Criar Item", "アイテム作成"},
	"admin.manageAuctions": {"Manage Auctions", "Gerenciar Leilões", "オークション管理"},
	"admin.itemName":       {"Item Name", "Nome do Item", "アイテム名"},
	"admin.description":    {"Description", "Descrição", "説明"},
	"admin.imageUrl":       {"Image URL", "URL da Imagem", "画像URL"},
	"admin.startTime":      {"Start Time", "Hora de Início", "開始時間"},
	"admin.create":         {"Create", "Criar", "作成"},
	"admin.schedule":       {"Schedule", "Agendar", "スケジュール"},
	"admin.status":         {"Status", "Status", "ステータス"},
	"admin.actions":        {"Actions", "Ações", "アクション"},
	"admin.end":            {"End", "Encerrar", "終了"},

	// Settings
	"settings.title":    {"Settings", "Configurações", "設定"},
	"settings.language": {"Language", "Idioma", "言語"},
	"settings.account":  {"Account Information", "Informações da Conta", "アカウント情報"},
}

// Supported reports whether the language code is a known language.
func Supported(lang Language) bool {
	return lang == English || lang == Portuguese || lang == Japanese
}

// Translate resolves a key for the language. Unknown languages fall back
// to English; unknown keys come back unchanged.
func Translate(key string, lang Language) string {
	e, ok := translations[key]
	if !ok {
		return key
	}
	switch lang {
	case Portuguese:
		return e.pt
	case Japanese:
		return e.ja
	default:
		return e.en
	}
}

// Table returns the full key -> string table for the language.
func Table(lang Language) map[string]string {
	out := make(map[string]string, len(translations))
	for key := range translations {
		out[key] = Translate(key, lang)
	}
	return out
}
