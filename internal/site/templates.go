package site

// pageTemplate is the fixed document skeleton. The six nav anchors and the
// section order are part of the page contract used by main.js.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <meta name="description" content="{{.Description}}">
    <meta name="keywords" content="{{.Keywords}}">
    <meta property="og:title" content="{{.OGTitle}}">
    <meta property="og:description" content="{{.OGDescription}}">
    <meta property="og:type" content="website">
    <link rel="preconnect" href="https://fonts.googleapis.com">
    <link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>
    <link href="https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700&display=swap" rel="stylesheet">
    <link rel="stylesheet" href="style.css?v={{.Version}}">
</head>
<body>
    <script>
    (function(){var t=localStorage.getItem('theme');if(t==='dark'||(!t&&window.matchMedia('(prefers-color-scheme:dark)').matches))document.body.classList.add('dark');})();
    </script>

    <!-- Navigation -->
    <nav class="navbar" id="navbar">
        <div class="nav-content">
            <a href="#about" class="nav-name">
                <span class="lang-en">{{.NameEN}}</span>
                <span class="lang-zh">{{.NameZH}}</span>
            </a>
            <div class="nav-right">
                <button class="lang-toggle" id="lang-toggle" aria-label="Switch language">
                    <span class="lang-opt" data-lang="en">EN</span>
                    <span class="lang-sep">/</span>
                    <span class="lang-opt" data-lang="zh">中</span>
                </button>
                <button class="theme-toggle" id="theme-toggle" aria-label="Toggle dark mode">
                    <svg class="icon-sun" xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><circle cx="12" cy="12" r="5"/><line x1="12" y1="1" x2="12" y2="3"/><line x1="12" y1="21" x2="12" y2="23"/><line x1="4.22" y1="4.22" x2="5.64" y2="5.64"/><line x1="18.36" y1="18.36" x2="19.78" y2="19.78"/><line x1="1" y1="12" x2="3" y2="12"/><line x1="21" y1="12" x2="23" y2="12"/><line x1="4.22" y1="19.78" x2="5.64" y2="18.36"/><line x1="18.36" y1="5.64" x2="19.78" y2="4.22"/></svg>
                    <svg class="icon-moon" xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><path d="M21 12.79A9 9 0 1 1 11.21 3 7 7 0 0 0 21 12.79z"/></svg>
                </button>
                <button class="nav-toggle" id="nav-toggle" aria-label="Toggle navigation">
                    <span></span>
                    <span></span>
                    <span></span>
                </button>
            </div>
            <ul class="nav-links" id="nav-links">
                <li><a href="#about"><span class="lang-en">About</span><span class="lang-zh">关于</span></a></li>
                <li><a href="#research"><span class="lang-en">Research</span><span class="lang-zh">研究</span></a></li>
                <li><a href="#publications"><span class="lang-en">Publications</span><span class="lang-zh">论文发表</span></a></li>
                <li><a href="#resexp"><span class="lang-en">Experience</span><span class="lang-zh">研究经历</span></a></li>
                <li><a href="#honors"><span class="lang-en">Honors</span><span class="lang-zh">荣誉</span></a></li>
                <li><a href="#experience"><span class="lang-en">Leadership</span><span class="lang-zh">学生工作</span></a></li>
            </ul>
        </div>
    </nav>

    <!-- Hero / About -->
    <section class="hero" id="about">
        <div class="container">
            <div class="hero-content">
                <div class="hero-photo">
                    <img src="assets/profile.jpg" alt="{{.PhotoAlt}}" onerror="this.style.display='none'; this.parentElement.classList.add('placeholder-active');">
                    <div class="photo-placeholder">
                        <svg viewBox="0 0 120 120" xmlns="http://www.w3.org/2000/svg">
                            <rect width="120" height="120" fill="#e9ecef"/>
                            <circle cx="60" cy="45" r="20" fill="#adb5bd"/>
                            <ellipse cx="60" cy="100" rx="35" ry="25" fill="#adb5bd"/>
                        </svg>
                    </div>
                </div>
                <div class="hero-text">
                    <h1>
                        <span class="lang-en">{{.NameEN}} <span class="name-cn">({{.NameZH}})</span></span>
                        <span class="lang-zh">{{.NameZH}} <span class="name-cn">({{.NameEN}})</span></span>
                    </h1>
                    <p class="hero-affiliation lang-en">{{.AffiliationEN}}</p>
                    <p class="hero-affiliation lang-zh">{{.AffiliationZH}}</p>
                    <p class="hero-tagline lang-en">{{.TaglineEN}}</p>
                    <p class="hero-tagline lang-zh">{{.TaglineZH}}</p>
                    <div class="hero-stats">
{{.Stats}}
                    </div>
                    <div class="icon-row">
{{.Links}}
                    </div>
                </div>
            </div>
        </div>
    </section>

    <!-- Research -->
    <section class="section section-alt" id="research">
        <div class="container">
            <h2 class="section-title">
                <span class="lang-en">Research</span>
                <span class="lang-zh">研究方向</span>
            </h2>
{{.Research}}
        </div>
    </section>

    <!-- Publications -->
    <section class="section" id="publications">
        <div class="container">
            <h2 class="section-title">
                <span class="lang-en">Publications</span>
                <span class="lang-zh">论文发表</span>
            </h2>
            <div class="pub-list">
{{.Publications}}
            </div>
        </div>
    </section>

    <!-- Research Experience -->
    <section class="section section-alt" id="resexp">
        <div class="container">
            <h2 class="section-title">
                <span class="lang-en">Research Experience</span>
                <span class="lang-zh">研究经历</span>
            </h2>
            <div class="resexp-list">
{{.ResearchExperience}}
            </div>
        </div>
    </section>

    <!-- Honors & Awards -->
    <section class="section" id="honors">
        <div class="container">
            <h2 class="section-title">
                <span class="lang-en">Honors &amp; Awards</span>
                <span class="lang-zh">荣誉与奖项</span>
            </h2>
            <ul class="honors-list">
{{.Honors}}
            </ul>
        </div>
    </section>

    <!-- Leadership & Service -->
    <section class="section section-alt" id="experience">
        <div class="container">
            <h2 class="section-title">
                <span class="lang-en">Leadership &amp; Service</span>
                <span class="lang-zh">学生工作与社会实践</span>
            </h2>

{{.Leadership}}
        </div>
    </section>

    <!-- Footer -->
    <footer class="footer" id="contact">
        <div class="container">
            <p>
                <span class="lang-en">{{.NameEN}}</span>
                <span class="lang-zh">{{.NameZH}}</span>
                &middot; {{.Email}}
            </p>
            <p class="footer-update">{{.LastUpdated}}</p>
        </div>
    </footer>

    <!-- Password Modal -->
    <div class="pw-overlay" id="pw-overlay">
        <div class="pw-modal">
            <p class="pw-title">
                <span class="lang-en">This file is password-protected</span>
                <span class="lang-zh">此文件需要密码访问</span>
            </p>
            <input type="password" class="pw-input" id="pw-input"
                   placeholder="Enter password" autocomplete="off">
            <p class="pw-error" id="pw-error">
                <span class="lang-en">Incorrect password</span>
                <span class="lang-zh">密码错误</span>
            </p>
            <div class="pw-actions">
                <button class="pw-btn pw-cancel" id="pw-cancel">
                    <span class="lang-en">Cancel</span>
                    <span class="lang-zh">取消</span>
                </button>
                <button class="pw-btn pw-submit" id="pw-submit">
                    <span class="lang-en">Submit</span>
                    <span class="lang-zh">确认</span>
                </button>
            </div>
        </div>
    </div>

    <script>window.__pwHash="{{.PasswordHash}}";</script>
    <script src="main.js?v={{.Version}}"></script>
</body>
</html>
`
