package service

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"vapor/internal/domain"
	"vapor/pkg/logger"
)

var ErrInvalidSeedRecord = errors.New("geçersiz kurulum kaydı")

var (
	seedUserPattern    = regexp.MustCompile(`^(AA|FS|SS|BS)(\S.{14})(\d{8})$`)
	seedGamePattern    = regexp.MustCompile(`^\S.{24}$`)
	seedListingPattern = regexp.MustCompile(`^(\S.{24})(\d{2}\.\d{2})(\d{5})$`)
	seedCountPattern   = regexp.MustCompile(`^\d+$`)
)

type SeedService interface {
	BuildMarket(path string) (*domain.Market, error)
}

type seedService struct {
	logger logger.Logger
}

func NewSeedService(logger logger.Logger) SeedService {
	return &seedService{logger: logger}
}

// BuildMarket, kurulum dosyasındaki kullanıcı bloklarından yeni bir pazar kurar.
// Tek bir bozuk kayıt tüm kurulumu iptal eder.
func (s *seedService) BuildMarket(path string) (*domain.Market, error) {
	file, err := os.Open(path)
	if err != nil {
		s.logger.Error("Kurulum dosyası açılamadı", map[string]interface{}{"path": path, "error": err.Error()})
		return nil, fmt.Errorf("kurulum dosyası açılamadı: %w", err)
	}
	defer file.Close()

	market := domain.NewMarket()
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		user, err := s.readUser(line)
		if err != nil {
			return nil, err
		}

		if user.Type() != domain.UserTypeSeller {
			if err := s.readGames(scanner, user); err != nil {
				return nil, err
			}
		}
		if user.Type().IsSeller() {
			if err := s.readListings(scanner, user); err != nil {
				return nil, err
			}
		}

		if err := market.ForceAddUser(user); err != nil {
			s.logger.Error("Kurulum kullanıcısı eklenemedi", map[string]interface{}{"username": user.Username(), "error": err.Error()})
			return nil, fmt.Errorf("%w: %s", ErrInvalidSeedRecord, user.Username())
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("kurulum dosyası okunamadı: %w", err)
	}

	s.logger.Info("Pazar kurulum dosyasından oluşturuldu", map[string]interface{}{"users": len(market.Users())})
	return market, nil
}

func (s *seedService) readUser(record string) (*domain.User, error) {
	match := seedUserPattern.FindStringSubmatch(record)
	if match == nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSeedRecord, record)
	}

	userType, _ := domain.ParseUserType(match[1])
	username := strings.TrimSpace(match[2])
	credit, err := strconv.ParseInt(match[3], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSeedRecord, record)
	}

	return domain.NewUser(username, credit, userType), nil
}

func (s *seedService) readGames(scanner *bufio.Scanner, user *domain.User) error {
	count, err := s.readCount(scanner)
	if err != nil {
		return err
	}

	inventory := user.Buyer().Inventory()
	for i := 0; i < count; i++ {
		record, err := s.nextRecord(scanner)
		if err != nil {
			return err
		}
		if !seedGamePattern.MatchString(record) {
			return fmt.Errorf("%w: %s", ErrInvalidSeedRecord, record)
		}

		if err := inventory.AddGame(domain.Game{Name: strings.TrimSpace(record)}); err != nil {
			s.logger.Error("Kurulum oyunu eklenemedi", map[string]interface{}{"username": user.Username(), "error": err.Error()})
			return fmt.Errorf("%w: %s", ErrInvalidSeedRecord, record)
		}
	}

	inventory.EndDay()
	return nil
}

func (s *seedService) readListings(scanner *bufio.Scanner, user *domain.User) error {
	count, err := s.readCount(scanner)
	if err != nil {
		return err
	}

	storeFront := user.Seller().StoreFront()
	for i := 0; i < count; i++ {
		record, err := s.nextRecord(scanner)
		if err != nil {
			return err
		}

		match := seedListingPattern.FindStringSubmatch(record)
		if match == nil {
			return fmt.Errorf("%w: %s", ErrInvalidSeedRecord, record)
		}

		game := domain.Game{Name: strings.TrimSpace(match[1])}
		discount, err := strconv.ParseFloat(match[2], 64)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidSeedRecord, record)
		}
		price, err := strconv.ParseInt(match[3], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidSeedRecord, record)
		}

		if err := storeFront.AddListing(domain.NewListing(game, price, discount)); err != nil {
			s.logger.Error("Kurulum ilanı eklenemedi", map[string]interface{}{"username": user.Username(), "error": err.Error()})
			return fmt.Errorf("%w: %s", ErrInvalidSeedRecord, record)
		}
	}

	storeFront.EndDay()
	return nil
}

func (s *seedService) readCount(scanner *bufio.Scanner) (int, error) {
	record, err := s.nextRecord(scanner)
	if err != nil {
		return 0, err
	}
	if !seedCountPattern.MatchString(record) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidSeedRecord, record)
	}

	return strconv.Atoi(record)
}

func (s *seedService) nextRecord(scanner *bufio.Scanner) (string, error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("kurulum dosyası okunamadı: %w", err)
		}
		return "", fmt.Errorf("%w: beklenmedik dosya sonu", ErrInvalidSeedRecord)
	}
	return scanner.Text(), nil
}
