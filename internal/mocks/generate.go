package mocks

//go:generate mockery --name EventStore --srcpkg github.com/brewlog/brewlog/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name WatermarkStore --srcpkg github.com/brewlog/brewlog/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name BucketStore --srcpkg github.com/brewlog/brewlog/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
