package mocks

//go:generate mockery --name FavouriteStore --srcpkg github.com/aevon-lab/favourite-service/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
