package services

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/condogestor/condoasset-backend/internal/domain/entities"
	"github.com/condogestor/condoasset-backend/internal/domain/errors"
)

var _ = Describe("AtivoService", func() {
	var (
		ctx         context.Context
		userRepo    *fakeUserRepo
		imovelRepo  *fakeImovelRepo
		ativoRepo   *fakeAtivoRepo
		chamadoRepo *fakeChamadoRepo
		sequence    *fakeSequence
		publisher   *capturePublisher
		service     *AtivoService

		gestor Actor
		imovel *entities.Imovel
	)

	BeforeEach(func() {
		ctx = context.Background()
		userRepo = newFakeUserRepo()
		imovelRepo = newFakeImovelRepo()
		ativoRepo = newFakeAtivoRepo()
		chamadoRepo = newFakeChamadoRepo()
		sequence = &fakeSequence{}
		publisher = &capturePublisher{}
		service = NewAtivoService(ativoRepo, imovelRepo, userRepo, chamadoRepo, sequence, fakeUnitOfWork{}, publisher, nopLogger{})

		owner := &entities.User{
			Name:     "Maria Souza",
			Email:    "maria@example.com",
			CpfCnpj:  "12345678901",
			Whatsapp: "11999990000",
			UserType: entities.UserTypeSindicoResidente,
		}
		Expect(userRepo.Create(ctx, owner)).To(Succeed())
		gestor = Actor{ID: owner.ID, UserType: owner.UserType}

		imovel = &entities.Imovel{
			GestorID:           gestor.ID,
			Cnpj:               "12.345.678/0001-95",
			NomeFantasia:       "Condomínio Jardim",
			RazaoSocial:        "Condomínio Jardim Ltda",
			Cep:                "01310-100",
			Endereco:           "Av. Paulista, 1000",
			Cidade:             "São Paulo",
			UF:                 "SP",
			QuantidadeMoradias: 40,
			AreasComuns:        []string{"piscina"},
		}
		Expect(imovelRepo.Create(ctx, imovel)).To(Succeed())
	})

	Describe("Create", func() {
		It("semeia os três ativos padrão na primeira criação e atribui códigos sequenciais", func() {
			view, err := service.Create(ctx, gestor, imovel.ID, CreateAtivoInput{
				DescricaoAtivo:  "Elevador Social",
				LocalInstalacao: "Torre A",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(view.Ativo.AssetCode).To(Equal("00004"))

			ativos, err := ativoRepo.ListByImovel(ctx, imovel.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(ativos).To(HaveLen(4))

			Expect(ativos[0].AssetCode).To(Equal("00001"))
			Expect(ativos[0].DescricaoAtivo).To(Equal("Sistema Elétrico"))
			Expect(ativos[0].LocalInstalacao).To(Equal("Áreas Comuns"))

			Expect(ativos[1].AssetCode).To(Equal("00002"))
			Expect(ativos[1].DescricaoAtivo).To(Equal("Sistema Hidráulico"))
			Expect(ativos[1].LocalInstalacao).To(Equal("Áreas Comuns"))

			Expect(ativos[2].AssetCode).To(Equal("00003"))
			Expect(ativos[2].DescricaoAtivo).To(Equal("Estrutura Civil"))
			Expect(ativos[2].LocalInstalacao).To(Equal("Geral"))

			Expect(ativos[3].DescricaoAtivo).To(Equal("Elevador Social"))
		})

		It("cria os ativos padrão com flags desligadas e relatório vazio", func() {
			_, err := service.Create(ctx, gestor, imovel.ID, CreateAtivoInput{
				DescricaoAtivo:  "Portão Eletrônico",
				LocalInstalacao: "Entrada",
			})
			Expect(err).NotTo(HaveOccurred())

			ativos, err := ativoRepo.ListByImovel(ctx, imovel.ID)
			Expect(err).NotTo(HaveOccurred())

			for _, ativo := range ativos[:3] {
				Expect(ativo.Garantia).To(BeFalse())
				Expect(ativo.ContratoManutencao).To(BeFalse())
				Expect(ativo.RelatorioFotograficoURLs).To(BeEmpty())
				Expect(ativo.RelatorioFotograficoURLs).NotTo(BeNil())
			}
		})

		It("não semeia novamente quando o imóvel já possui ativos", func() {
			_, err := service.Create(ctx, gestor, imovel.ID, CreateAtivoInput{
				DescricaoAtivo:  "Elevador Social",
				LocalInstalacao: "Torre A",
			})
			Expect(err).NotTo(HaveOccurred())

			view, err := service.Create(ctx, gestor, imovel.ID, CreateAtivoInput{
				DescricaoAtivo:  "Elevador de Serviço",
				LocalInstalacao: "Torre A",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(view.Ativo.AssetCode).To(Equal("00005"))

			count, err := ativoRepo.CountByImovel(ctx, imovel.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(5)))
		})

		It("continua a sequência global entre imóveis distintos", func() {
			_, err := service.Create(ctx, gestor, imovel.ID, CreateAtivoInput{
				DescricaoAtivo:  "Elevador Social",
				LocalInstalacao: "Torre A",
			})
			Expect(err).NotTo(HaveOccurred())

			outro := &entities.Imovel{
				GestorID:           gestor.ID,
				Cnpj:               "11.222.333/0001-81",
				NomeFantasia:       "Condomínio Lago",
				RazaoSocial:        "Condomínio Lago Ltda",
				Cep:                "04567-000",
				Endereco:           "Rua do Lago, 50",
				Cidade:             "São Paulo",
				UF:                 "SP",
				QuantidadeMoradias: 12,
			}
			Expect(imovelRepo.Create(ctx, outro)).To(Succeed())

			view, err := service.Create(ctx, gestor, outro.ID, CreateAtivoInput{
				DescricaoAtivo:  "Bomba d'água",
				LocalInstalacao: "Casa de máquinas",
			})
			Expect(err).NotTo(HaveOccurred())

			// 4 códigos consumidos pelo primeiro imóvel, 3 pela semeadura do
			// segundo; o solicitado recebe o oitavo
			Expect(view.Ativo.AssetCode).To(Equal("00008"))
		})

		It("publica o evento ativo.created para o gestor", func() {
			view, err := service.Create(ctx, gestor, imovel.ID, CreateAtivoInput{
				DescricaoAtivo:  "Elevador Social",
				LocalInstalacao: "Torre A",
			})
			Expect(err).NotTo(HaveOccurred())

			events := publisher.published()
			Expect(events).To(HaveLen(1))
			Expect(events[0].GestorID).To(Equal(gestor.ID))
			Expect(events[0].Event.Type).To(Equal("ativo.created"))
			Expect(events[0].Event.ID).To(Equal(view.Ativo.ID))
			Expect(events[0].Event.ImovelID).To(Equal(imovel.ID))
		})

		It("nega acesso a prestadores antes de resolver o imóvel", func() {
			prestador := Actor{ID: "qualquer", UserType: entities.UserTypePrestador}

			_, err := service.Create(ctx, prestador, "imovel-inexistente", CreateAtivoInput{
				DescricaoAtivo:  "Elevador",
				LocalInstalacao: "Torre A",
			})
			Expect(err).To(MatchError(errors.ErrPrestadorSemAcesso))
		})

		It("retorna not found para imóvel inexistente", func() {
			_, err := service.Create(ctx, gestor, "nao-existe", CreateAtivoInput{
				DescricaoAtivo:  "Elevador",
				LocalInstalacao: "Torre A",
			})
			Expect(err).To(MatchError(errors.ErrImovelNotFound))
		})

		It("nega acesso quando o imóvel pertence a outro gestor", func() {
			outroGestor := &entities.User{
				Name:     "João Lima",
				Email:    "joao@example.com",
				CpfCnpj:  "98765432100",
				Whatsapp: "11888880000",
				UserType: entities.UserTypeAdminImoveis,
			}
			Expect(userRepo.Create(ctx, outroGestor)).To(Succeed())

			_, err := service.Create(ctx, Actor{ID: outroGestor.ID, UserType: outroGestor.UserType}, imovel.ID, CreateAtivoInput{
				DescricaoAtivo:  "Elevador",
				LocalInstalacao: "Torre A",
			})
			Expect(err).To(MatchError(errors.ErrSemPermissao))
		})
	})

	Describe("ListByImovel", func() {
		It("retorna os ativos ordenados por asset_code com o resumo do imóvel", func() {
			_, err := service.Create(ctx, gestor, imovel.ID, CreateAtivoInput{
				DescricaoAtivo:  "Elevador Social",
				LocalInstalacao: "Torre A",
			})
			Expect(err).NotTo(HaveOccurred())

			views, err := service.ListByImovel(ctx, gestor, imovel.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(views).To(HaveLen(4))

			for i := 1; i < len(views); i++ {
				Expect(views[i-1].Ativo.AssetCode < views[i].Ativo.AssetCode).To(BeTrue())
			}
			Expect(views[0].Imovel.NomeFantasia).To(Equal("Condomínio Jardim"))
		})
	})

	Describe("GetOne", func() {
		It("retorna o detalhe com gestor e chamados recentes", func() {
			view, err := service.Create(ctx, gestor, imovel.ID, CreateAtivoInput{
				DescricaoAtivo:  "Elevador Social",
				LocalInstalacao: "Torre A",
			})
			Expect(err).NotTo(HaveOccurred())

			detail, err := service.GetOne(ctx, gestor, imovel.ID, view.Ativo.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(detail.Gestor.Name).To(Equal("Maria Souza"))
			Expect(detail.ChamadosRecentes).To(BeEmpty())
		})

		It("retorna not found quando o ativo pertence a outro imóvel", func() {
			view, err := service.Create(ctx, gestor, imovel.ID, CreateAtivoInput{
				DescricaoAtivo:  "Elevador Social",
				LocalInstalacao: "Torre A",
			})
			Expect(err).NotTo(HaveOccurred())

			outro := &entities.Imovel{
				GestorID:           gestor.ID,
				Cnpj:               "11.222.333/0001-81",
				NomeFantasia:       "Condomínio Lago",
				RazaoSocial:        "Condomínio Lago Ltda",
				Cep:                "04567-000",
				Endereco:           "Rua do Lago, 50",
				Cidade:             "São Paulo",
				UF:                 "SP",
				QuantidadeMoradias: 12,
			}
			Expect(imovelRepo.Create(ctx, outro)).To(Succeed())

			_, err = service.GetOne(ctx, gestor, outro.ID, view.Ativo.ID)
			Expect(err).To(MatchError(errors.ErrAtivoNotFound))
		})
	})

	Describe("Update", func() {
		It("atualiza apenas os campos informados", func() {
			view, err := service.Create(ctx, gestor, imovel.ID, CreateAtivoInput{
				DescricaoAtivo:  "Elevador Social",
				LocalInstalacao: "Torre A",
			})
			Expect(err).NotTo(HaveOccurred())

			novaDescricao := "Elevador Social Reformado"
			garantia := true
			updated, err := service.Update(ctx, gestor, imovel.ID, view.Ativo.ID, UpdateAtivoInput{
				DescricaoAtivo: &novaDescricao,
				Garantia:       &garantia,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Ativo.DescricaoAtivo).To(Equal("Elevador Social Reformado"))
			Expect(updated.Ativo.Garantia).To(BeTrue())
			Expect(updated.Ativo.LocalInstalacao).To(Equal("Torre A"))
			Expect(updated.Ativo.AssetCode).To(Equal(view.Ativo.AssetCode))
		})
	})

	Describe("Delete", func() {
		It("exclui um ativo sem chamados", func() {
			view, err := service.Create(ctx, gestor, imovel.ID, CreateAtivoInput{
				DescricaoAtivo:  "Elevador Social",
				LocalInstalacao: "Torre A",
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(service.Delete(ctx, gestor, imovel.ID, view.Ativo.ID)).To(Succeed())

			found, err := ativoRepo.FindByID(ctx, imovel.ID, view.Ativo.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeNil())
		})

		It("bloqueia a exclusão enquanto houver chamados vinculados", func() {
			view, err := service.Create(ctx, gestor, imovel.ID, CreateAtivoInput{
				DescricaoAtivo:  "Elevador Social",
				LocalInstalacao: "Torre A",
			})
			Expect(err).NotTo(HaveOccurred())

			chamadoRepo.countsByAtivo[view.Ativo.ID] = 2

			err = service.Delete(ctx, gestor, imovel.ID, view.Ativo.ID)
			Expect(err).To(MatchError(errors.ErrAtivoComChamados))

			found, findErr := ativoRepo.FindByID(ctx, imovel.ID, view.Ativo.ID)
			Expect(findErr).NotTo(HaveOccurred())
			Expect(found).NotTo(BeNil())
		})
	})
})
