package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/gameday --output domain/gameday --outpkg gamedaymock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/outcome --output domain/outcome --outpkg outcomemock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/playerrecord --output domain/playerrecord --outpkg playerrecordmock --filename repository_mock.go
