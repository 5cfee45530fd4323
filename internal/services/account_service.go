package services

import (
	"ntd/internal/providers"
	"ntd/internal/session"
	"ntd/internal/storage"
)

type AccountServiceInterface interface {
	Login(email string)
	Logout() string
	ActiveScope() string
}

// AccountService is the session boundary. It never authenticates (the host
// application does that), it only records which scope is active and erases a
// scope's partitions on logout so nothing leaks into the next sign-in.
type AccountService struct {
	session   *session.Session
	store     *storage.Store
	meals     MealServiceInterface
	added     AddedServiceInterface
	favorites FavoritesServiceInterface
	logger    providers.Logger
}

func NewAccountService(sess *session.Session, store *storage.Store, meals MealServiceInterface, added AddedServiceInterface, favorites FavoritesServiceInterface, logger providers.Logger) AccountServiceInterface {
	return &AccountService{
		session:   sess,
		store:     store,
		meals:     meals,
		added:     added,
		favorites: favorites,
		logger:    logger,
	}
}

func (as *AccountService) Login(email string) {
	as.session.SetActive(email)
	as.logger.Infof(providers.TypeApp, "Active user scope switched")
}

// Logout clears the signed-out scope's ledger, registries and recommendation
// cache, then falls back to the default scope. Returns the erased scope.
func (as *AccountService) Logout() string {
	scope := as.session.SignOut()
	if scope == storage.DefaultScope {
		return scope
	}

	as.meals.ClearScope(scope)
	as.added.ClearScope(scope)
	as.favorites.ClearScope(scope)
	if err := as.store.Open(recommendCacheBase, scope).Clear(); err != nil {
		as.logger.Errorf(providers.TypeApp, "Cannot clear recommendation cache for %s: %s", scope, err)
	}

	as.logger.Infof(providers.TypeApp, "Erased partitions for signed-out scope")
	return scope
}

func (as *AccountService) ActiveScope() string {
	return as.session.Scope()
}
